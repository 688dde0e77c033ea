package meshio

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"raytracer/raymath"
	"raytracer/scene"
)

// loadMTL parses a Wavefront .mtl file and registers one Material per
// "newmtl" block in sc's registry: Ka/Kd/Ks map to ambient/diffuse/specular,
// Ns to shininess, Ni to refractive index, d to refraction (as 1-d). Other
// directives, including Tr and map_Kd, are ignored: no texture is
// registered or attached, so the loaded materials are never textured.
func loadMTL(path string, sc *scene.Scene) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("meshio: open %q: %w", path, err)
	}
	defer f.Close()

	var curName string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)

		switch fields[0] {
		case "newmtl":
			if len(fields) > 1 {
				curName = fields[1]
				sc.Assets.CreateMaterial(curName)
			}
		case "Ka":
			if curName != "" && len(fields) >= 4 {
				sc.Assets.Material(curName).SetAmbient(parseColor(fields[1:4]))
			}
		case "Kd":
			if curName != "" && len(fields) >= 4 {
				sc.Assets.Material(curName).SetDiffuse(parseColor(fields[1:4]))
			}
		case "Ks":
			if curName != "" && len(fields) >= 4 {
				sc.Assets.Material(curName).SetSpecular(parseColor(fields[1:4]))
			}
		case "Ns":
			if curName != "" && len(fields) >= 2 {
				v, _ := strconv.ParseFloat(fields[1], 64)
				sc.Assets.Material(curName).SetShininess(v)
			}
		case "Ni":
			if curName != "" && len(fields) >= 2 {
				v, _ := strconv.ParseFloat(fields[1], 64)
				sc.Assets.Material(curName).SetRefractiveIndex(v)
			}
		case "d":
			if curName != "" && len(fields) >= 2 {
				v, _ := strconv.ParseFloat(fields[1], 64)
				sc.Assets.Material(curName).SetRefraction(1 - v)
			}
		}
	}
	return scanner.Err()
}

func parseColor(fields []string) raymath.Color {
	r, _ := strconv.ParseFloat(fields[0], 64)
	g, _ := strconv.ParseFloat(fields[1], 64)
	b, _ := strconv.ParseFloat(fields[2], 64)
	return raymath.Color{r, g, b}
}

package server

import (
	"fmt"
	"math"
	"math/rand"
	"net/http"
	"strconv"

	"github.com/minipNaf/ISE5785-9200-0429/pkg/core"
	"github.com/minipNaf/ISE5785-9200-0429/pkg/geometry"
	"github.com/minipNaf/ISE5785-9200-0429/pkg/material"
)

// InspectResponse represents the JSON response for object inspection
type InspectResponse struct {
	Hit          bool                   `json:"hit"`
	GeometryType string                 `json:"geometryType"`
	Point        [3]float64             `json:"point"`
	Normal       [3]float64             `json:"normal"`
	Distance     float64                `json:"distance"`
	FrontFace    bool                   `json:"frontFace"`
	Properties   map[string]interface{} `json:"properties"`
}

func vec(v core.Vec3) [3]float64 { return [3]float64{v.X, v.Y, v.Z} }

// extractMaterialInfo lists the Phong coefficients and emission of a surface
func extractMaterialInfo(m material.Material, emission core.Vec3) map[string]interface{} {
	return map[string]interface{}{
		"ka":        vec(m.Ka),
		"kd":        vec(m.Kd),
		"ks":        vec(m.Ks),
		"shininess": m.Shininess,
		"emission":  vec(emission),
		"color":     fmt.Sprintf("#%02x%02x%02x", emissionByte(emission.X), emissionByte(emission.Y), emissionByte(emission.Z)),
	}
}

func emissionByte(channel float64) int {
	return int(math.Max(0, math.Min(255, channel)))
}

// extractGeometryInfo extracts detailed geometry information
func extractGeometryInfo(surface geometry.Surface) (string, map[string]interface{}) {
	properties := make(map[string]interface{})

	switch geom := surface.(type) {
	case *geometry.Sphere:
		properties["center"] = vec(geom.Center())
		properties["radius"] = geom.Radius()
		return "sphere", properties

	case *geometry.Plane:
		properties["point"] = vec(geom.Point())
		properties["normal"] = vec(geom.Normal())
		return "plane", properties

	case *geometry.Triangle:
		v0, v1, v2 := geom.Vertices()
		properties["vertices"] = [][3]float64{vec(v0), vec(v1), vec(v2)}
		return "triangle", properties

	case *geometry.Polygon:
		var vertices [][3]float64
		for _, v := range geom.Vertices() {
			vertices = append(vertices, vec(v))
		}
		properties["vertices"] = vertices
		return "polygon", properties

	case *geometry.Circle:
		properties["center"] = vec(geom.Center())
		properties["radius"] = geom.Radius()
		return "circle", properties

	case *geometry.Tube:
		properties["axisOrigin"] = vec(geom.Axis().Origin)
		properties["axisDirection"] = vec(geom.Axis().Direction)
		properties["radius"] = geom.Radius()
		return "tube", properties

	case *geometry.Cylinder:
		properties["axisOrigin"] = vec(geom.Axis().Origin)
		properties["axisDirection"] = vec(geom.Axis().Direction)
		properties["radius"] = geom.Radius()
		properties["height"] = geom.Height()
		return "cylinder", properties

	default:
		return "unknown", properties
	}
}

// handleInspect casts the center ray of a pixel and describes the nearest
// surface it hits
func (s *Server) handleInspect(w http.ResponseWriter, r *http.Request) {
	req, err := s.parseRenderRequest(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid scene parameters: "+err.Error())
		return
	}
	// One ray through the pixel center
	req.AntiAliasing = 0
	req.Aperture = 0

	camera, sceneObj, err := s.createCamera(req, nil)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	pixelX, err := strconv.Atoi(r.URL.Query().Get("x"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid x coordinate")
		return
	}
	pixelY, err := strconv.Atoi(r.URL.Query().Get("y"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid y coordinate")
		return
	}
	if pixelX < 0 || pixelX >= camera.Writer().Width() || pixelY < 0 || pixelY >= camera.Writer().Height() {
		writeError(w, http.StatusBadRequest, "Pixel coordinates out of bounds")
		return
	}

	ray := camera.ConstructRays(pixelX, pixelY, rand.New(rand.NewSource(0)))[0]
	hit, ok := geometry.ClosestIntersection(ray, sceneObj.Geometries.Intersect(ray, math.Inf(1)))
	if !ok {
		writeJSON(w, http.StatusOK, InspectResponse{Hit: false})
		return
	}

	geometryType, geometryProps := extractGeometryInfo(hit.Surface)
	normal := hit.Surface.NormalAt(hit.Point)
	writeJSON(w, http.StatusOK, InspectResponse{
		Hit:          true,
		GeometryType: geometryType,
		Point:        vec(hit.Point),
		Normal:       vec(normal),
		Distance:     ray.Origin.Distance(hit.Point),
		FrontFace:    normal.Dot(ray.Direction) < 0,
		Properties: map[string]interface{}{
			"material": extractMaterialInfo(hit.Material, hit.Surface.Emission()),
			"geometry": geometryProps,
		},
	})
}

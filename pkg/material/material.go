package material

import "github.com/minipNaf/ISE5785-9200-0429/pkg/core"

// Material holds the Phong reflectance coefficients of a surface.
// Kr and Kt are carried for completeness; local shading ignores them.
type Material struct {
	Ka        core.Vec3 // Ambient attenuation
	Kd        core.Vec3 // Diffuse attenuation
	Ks        core.Vec3 // Specular attenuation
	Kr        core.Vec3 // Reflection coefficient
	Kt        core.Vec3 // Transparency coefficient
	Shininess int       // Specular exponent
}

// New returns the default material: full ambient response, no diffuse or specular
func New() Material {
	return Material{Ka: uniform(1)}
}

func uniform(k float64) core.Vec3 {
	return core.NewVec3(k, k, k)
}

// WithKa returns a copy with a uniform ambient coefficient
func (m Material) WithKa(k float64) Material {
	m.Ka = uniform(k)
	return m
}

// WithKaVec returns a copy with a per-channel ambient coefficient
func (m Material) WithKaVec(k core.Vec3) Material {
	m.Ka = k
	return m
}

// WithKd returns a copy with a uniform diffuse coefficient
func (m Material) WithKd(k float64) Material {
	m.Kd = uniform(k)
	return m
}

// WithKdVec returns a copy with a per-channel diffuse coefficient
func (m Material) WithKdVec(k core.Vec3) Material {
	m.Kd = k
	return m
}

// WithKs returns a copy with a uniform specular coefficient
func (m Material) WithKs(k float64) Material {
	m.Ks = uniform(k)
	return m
}

// WithKsVec returns a copy with a per-channel specular coefficient
func (m Material) WithKsVec(k core.Vec3) Material {
	m.Ks = k
	return m
}

// WithKr returns a copy with a uniform reflection coefficient
func (m Material) WithKr(k float64) Material {
	m.Kr = uniform(k)
	return m
}

// WithKt returns a copy with a uniform transparency coefficient
func (m Material) WithKt(k float64) Material {
	m.Kt = uniform(k)
	return m
}

// WithShininess returns a copy with the given specular exponent
func (m Material) WithShininess(n int) Material {
	m.Shininess = n
	return m
}

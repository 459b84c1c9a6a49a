package renderer

import (
	"fmt"

	"github.com/Faultbox/carscene/internal/engine/lighting"
	"github.com/Faultbox/carscene/internal/engine/shader"
)

type lightLocations struct {
	enabled          int32
	position         int32
	color            int32
	spotDirection    int32
	spotCosineCutoff int32
	spotExponent     int32
	attenuation      int32
}

type locations struct {
	modelview    int32
	projection   int32
	normalMatrix int32

	diffuseColor     int32
	specularColor    int32
	emissiveColor    int32
	specularExponent int32

	lights [lighting.SlotCount]lightLocations
}

// lightUniform names a field of one element of the lights array.
func lightUniform(i int, field string) string {
	return fmt.Sprintf("lights[%d].%s", i, field)
}

func lookupLocations(program uint32) locations {
	loc := locations{
		modelview:        shader.GetUniform(program, "modelview"),
		projection:       shader.GetUniform(program, "projection"),
		normalMatrix:     shader.GetUniform(program, "normalMatrix"),
		diffuseColor:     shader.GetUniform(program, "material.diffuseColor"),
		specularColor:    shader.GetUniform(program, "material.specularColor"),
		emissiveColor:    shader.GetUniform(program, "material.emissiveColor"),
		specularExponent: shader.GetUniform(program, "material.specularExponent"),
	}
	for i := range loc.lights {
		loc.lights[i] = lightLocations{
			enabled:          shader.GetUniform(program, lightUniform(i, "enabled")),
			position:         shader.GetUniform(program, lightUniform(i, "position")),
			color:            shader.GetUniform(program, lightUniform(i, "color")),
			spotDirection:    shader.GetUniform(program, lightUniform(i, "spotDirection")),
			spotCosineCutoff: shader.GetUniform(program, lightUniform(i, "spotCosineCutoff")),
			spotExponent:     shader.GetUniform(program, lightUniform(i, "spotExponent")),
			attenuation:      shader.GetUniform(program, lightUniform(i, "attenuation")),
		}
	}
	return loc
}

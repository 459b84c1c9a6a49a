package scene

import (
	"strconv"

	"github.com/Faultbox/carscene/internal/engine/mesh"
	"github.com/Faultbox/carscene/pkg/math"
)

var (
	sideNames  = [2]string{"left", "right"}
	endNames   = [2]string{"front", "back"}
	spokeNames = [3]string{"spoke0", "spoke1", "spoke2"}
	treeNames  [TreeCount]string
)

func init() {
	for i := range treeNames {
		treeNames[i] = "tree" + strconv.Itoa(i)
	}
}

// drawFrame is the draw walk: the sky bodies, then the world.
func drawFrame(c *Context) {
	sky(c)
	world(c)
}

// captureFrame is the capture walk. It visits the sun and lamp and the light
// mounts inside the vehicle frame without drawing anything.
func captureFrame(c *Context) {
	sky(c)
	c.Scope("vehicle", vehicleFrame(c.state.FrameNumber), func() {
		for i, mount := range headlampMounts {
			carrier := LeftHeadlightCarrier
			if i == 1 {
				carrier = RightHeadlightCarrier
			}
			c.Scope("headlight-"+sideNames[i], mount.Mul(headlightTilt), func() {
				c.Capture(carrier)
			})
		}
		c.Scope("beam", ufoBeamMount, func() {
			c.Capture(UFOCarrier)
		})
	})
}

// sky draws the sun, glowing yellow by day and dim at night, and the lamp,
// which only glows at night. Whichever one is lit carries light 1.
func sky(c *Context) {
	c.SetColor(skyBodyColor)

	c.Scope("sun", sunPlacement(c.state.SunAngle), func() {
		if c.Daytime() {
			c.SetEmissive(sunDayGlow)
			c.Capture(SunCarrier)
		} else {
			c.SetEmissive(sunNightGlow)
		}
		c.Draw(mesh.Sphere)
		c.SetEmissive(noGlow)
	})

	c.Scope("lamp", lampPlacement, func() {
		if !c.Daytime() {
			c.Capture(LampCarrier)
			c.SetEmissive(lampGlow)
		}
		c.Draw(mesh.Sphere)
		c.SetEmissive(noGlow)
	})
}

func world(c *Context) {
	c.Scope("ground", groundPlacement, func() {
		c.SetColor(groundColor)
		c.Draw(mesh.Disk)
	})

	c.Scope("post", postPlacement, func() {
		c.SetColor(postColor)
		c.Draw(mesh.Cylinder)
	})

	c.Scope("road", upright, func() {
		c.SetColor(roadColor)
		c.Draw(mesh.Ring)
	})

	c.Scope("vehicle", vehicleFrame(c.state.FrameNumber), func() {
		if c.flags.Car {
			car(c)
		}
		if c.flags.UFO {
			ufo(c)
		}
	})

	c.Scope("forest", math.Identity(), func() {
		for i, spot := range forest {
			if spot.Turn != 0 {
				c.Compose(math.RotateY(math.Radians(spot.Turn)))
			}
			c.Scope(treeNames[i], spot.placement(), func() {
				tree(c)
			})
		}
	})
}

// tree is a brown trunk under a green cone.
func tree(c *Context) {
	c.Scope("upright", upright, func() {
		c.Scope("trunk", trunkShape, func() {
			c.SetColor(trunkColor)
			c.Draw(mesh.Cylinder)
		})
		c.Scope("crown", crownShape, func() {
			c.SetColor(crownColor)
			c.Draw(mesh.Cone)
		})
	})
}

// car is a red body and cab on two axles, with headlamps that glow at night.
func car(c *Context) {
	c.Scope("car", math.Identity(), func() {
		for i, mount := range axleMounts {
			c.Scope("axle-"+endNames[i], mount, func() {
				axle(c)
			})
		}

		c.SetColor(bodyColor)
		c.Scope("body", bodyPlacement, func() {
			c.Draw(mesh.Cube)
		})
		c.Scope("cab", cabPlacement, func() {
			c.Draw(mesh.Cube)
		})

		c.SetColor(headlampColor)
		if !c.Daytime() {
			c.SetEmissive(headlampGlow)
		}
		for i, mount := range headlampMounts {
			c.Scope("headlamp-"+sideNames[i], mount.Mul(lampLens), func() {
				c.Draw(mesh.Sphere)
			})
		}
		c.SetEmissive(noGlow)
	})
}

func axle(c *Context) {
	c.SetColor(axleColor)
	c.Scope("shaft", shaftShape, func() {
		c.Draw(mesh.Cylinder)
	})
	for i, mount := range wheelMounts {
		c.Scope("wheel-"+sideNames[i], mount, func() {
			wheel(c)
		})
	}
}

// wheel is a spinning tyre with three spokes.
func wheel(c *Context) {
	c.Scope("spin", wheelSpin(c.state.FrameNumber), func() {
		c.SetColor(tyreColor)
		c.Draw(mesh.Torus)

		c.SetColor(spokeColor)
		for i, turn := range spokeTurns {
			c.Scope(spokeNames[i], math.RotateZ(math.Radians(turn)).Mul(spokeShape), func() {
				c.Draw(mesh.Cylinder)
			})
		}
	})
}

// ufo is a saucer with a small dome above and below.
func ufo(c *Context) {
	c.SetColor(ufoColor)
	c.Scope("ufo", saucerPlacement, func() {
		c.Draw(mesh.Torus)
		c.Scope("dome-top", domeTop, func() {
			c.Draw(mesh.Sphere)
		})
		c.Scope("dome-bottom", domeBottom, func() {
			c.Draw(mesh.Sphere)
		})
	})
}

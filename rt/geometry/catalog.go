package geometry

// Shape is a named generator with its parameters bound.
type Shape struct {
	Name  string
	Build func() *Mesh
}

// Catalog returns the locally generated shapes in draw order.
func Catalog() []Shape {
	return []Shape{
		{"cube", Cube},
		{"star", func() *Mesh {
			return Star(DefaultStarPoints, DefaultStarInnerRadius, DefaultStarOuterRadius)
		}},
		{"helix", func() *Mesh {
			return Helix(DefaultHelixSegments, DefaultHelixRadius, DefaultHelixHeight, DefaultHelixConnectorLength)
		}},
		{"bow-and-arrow", BowAndArrow},
		{"arch", func() *Mesh {
			return Arch(DefaultArchSegments, DefaultArchRadius, DefaultArchThickness, DefaultArchHeight)
		}},
		{"torus", func() *Mesh {
			return Torus(DefaultTorusMajorRadius, DefaultTorusMinorRadius, DefaultTorusSegments, DefaultTorusRings)
		}},
		{"cone", func() *Mesh {
			return Cone(DefaultConeRadius, DefaultConeHeight, DefaultConeSegments)
		}},
	}
}

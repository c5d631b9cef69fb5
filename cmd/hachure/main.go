// Command hachure converts parsed hatch entity documents into renderable
// geometry: triangle meshes for solid fills, clipped line sets for pattern
// fills, with optional PNG previews.
package main

func main() {
	execute()
}

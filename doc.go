// Package wardley projects Wardley maps onto the screen and renders them
// with [Ebitengine].
//
// A map places components on two semantic axes: Evolution (horizontal,
// genesis to commodity) and Visibility (vertical, how close a component is
// to the user). Both are normalized to [0, 100].
//
// # Quick start
//
// Describe the map, build a scene for a pixel viewport and run it:
//
//	doc := &wardley.MapDocument{
//		Nodes: []wardley.MapNode{
//			{ID: "this", Name: "This", Position: wardley.At(50, 50)},
//			{ID: "that", Name: "That", Position: wardley.At(70, 70)},
//		},
//	}
//	scene, err := wardley.NewScene(doc, 1000, 800, wardley.DefaultSceneOptions())
//	if err != nil {
//		log.Fatal(err)
//	}
//	err = wardley.Run(ctx, scene, wardley.RunConfig{Title: "Map", Width: 1000, Height: 800})
//
// For full control, drive [Scene.Update] and [Scene.Draw] from your own
// [ebiten.Game], or use [NewLoop] and call its methods directly.
//
// # Coordinates
//
// [Project] maps normalized coordinates to pixel layout space linearly:
// (0, 0) is the bottom-left corner and (100, 100) the top-right. The
// [Camera] shows that space with Y pointing up; zoom is the only camera
// control, so the axes and their labels always stay aligned.
//
// # Composition
//
// [Compose] is pure: it turns a [MapDocument] and a [Viewport] into a
// [Composition] holding grid lines, placed nodes and resolved edges. Random
// decisions (decorative connections, placement of nodes without a
// position) come from [ComposeOptions.Rand], so a fixed seed reproduces a
// map exactly. [NewScene] builds the renderable node tree from it.
//
// # Errors
//
// Invalid counts, sizes and documents are reported as [*ConfigError],
// which matches [ErrConfiguration] under [errors.Is]. Misuse of the node
// tree (nil children, cycles) panics.
//
// [Ebitengine]: https://ebitengine.org
package wardley

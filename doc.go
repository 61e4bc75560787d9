// Package vrmmeta extracts the JSON metadata of VRM avatar files.
//
// A VRM file is a binary glTF (GLB) container whose JSON chunk carries a
// VRM extension. vrmmeta reads only that chunk, detects which VRM schema
// generation it follows, and exposes it three ways: the raw document,
// named logical sections, and a generation-normalized summary.
//
// # Quick Start
//
//	file, err := vrmmeta.Open("avatar.vrm")
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	fmt.Println(file.Generation) // "0.x", "1.0" or "unknown"
//
//	meta, err := file.Section("meta")
//	if err == nil {
//		fmt.Println(meta)
//	}
//
//	s := file.Summary()
//	fmt.Printf("%d bones\n", s.Humanoid.BoneCount)
//
// # Generations
//
// VRM 0.x documents keep everything under extensions.VRM; VRM 1.0 splits
// it across VRMC_vrm, VRMC_springBone and per-material
// VRMC_materials_mtoon. A document carrying both is read as 0.x.
// Documents with neither are "unknown"; their sections are probed with
// the 0.x layout.
//
// # Sections
//
// Section names are case-insensitive and drawn from a fixed vocabulary:
//
//	meta humanoid materials mtoon nodes meshes skins textures images
//	blendshape expressions firstperson lookat springbone vrm
//
// Not every name exists in every generation; blendshape is 0.x only and
// expressions is 1.0 only. An empty or null section is not found.
//
// # Error Handling
//
// Container and JSON problems are returned as *FormatError, whose Kind
// names the failure and whose Offset points into the file:
//
//	var fe *vrmmeta.FormatError
//	if errors.As(err, &fe) && fe.Kind == vrmmeta.TruncatedFile {
//		...
//	}
//
// Non-fatal issues, such as a declared length that disagrees with the
// file size, are collected in File.Warnings instead.
//
// # Input
//
// Open accepts plain .vrm/.glb files and gzip or zstd compressed ones.
// Read accepts any io.Reader, such as stdin. OpenMany reads many files
// concurrently.
package vrmmeta

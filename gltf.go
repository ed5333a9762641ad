package quat3d

import (
	"bytes"
	"fmt"
	"log"
	"os"

	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"
)

// RotationLoadOptions alters how rotations are loaded from glTF files. A nil
// RotationLoadOptions loads with defaults.
type RotationLoadOptions struct {
	// NormalizeRotations renormalizes every loaded rotation; some exporters write
	// slightly denormalized quaternions, which would otherwise drift through repeated
	// composition.
	NormalizeRotations bool
}

// RotationLibrary holds the rotations read out of a glTF document - the static rotation of
// each named node, and a RotationTrack for each rotation channel of each animation.
type RotationLibrary struct {
	// NodeRotations maps node names to their local rotations. Nodes without a rotation
	// get the identity.
	NodeRotations map[string]Quaternion
	// Tracks maps "animation/node" names to rotation keyframe tracks.
	Tracks map[string]*RotationTrack
}

// LoadGLTFFile loads the rotations out of a .gltf or .glb file from the filepath given,
// using a provided RotationLoadOptions struct to alter how the rotations are loaded.
// Passing nil for loadOptions will load the file using default load options.
// LoadGLTFFile will return a RotationLibrary, and an error if the process fails.
func LoadGLTFFile(path string, loadOptions *RotationLoadOptions) (*RotationLibrary, error) {

	fileData, err := os.ReadFile(path)

	if err != nil {
		return nil, err
	}

	return LoadGLTFData(fileData, loadOptions)

}

// LoadGLTFData loads the rotations out of .gltf or .glb file data given, using a provided
// RotationLoadOptions struct to alter how the rotations are loaded. Passing nil for
// loadOptions will load the data using default load options.
// LoadGLTFData will return a RotationLibrary, and an error if the process fails.
func LoadGLTFData(data []byte, loadOptions *RotationLoadOptions) (*RotationLibrary, error) {

	decoder := gltf.NewDecoder(bytes.NewReader(data))

	doc := gltf.NewDocument()

	if err := decoder.Decode(doc); err != nil {
		return nil, err
	}

	return loadRotations(doc, loadOptions)

}

func loadRotations(doc *gltf.Document, loadOptions *RotationLoadOptions) (*RotationLibrary, error) {

	if loadOptions == nil {
		loadOptions = &RotationLoadOptions{}
	}

	library := &RotationLibrary{
		NodeRotations: map[string]Quaternion{},
		Tracks:        map[string]*RotationTrack{},
	}

	for _, node := range doc.Nodes {

		rot := NewQuaternion(float64(node.Rotation[0]), float64(node.Rotation[1]), float64(node.Rotation[2]), float64(node.Rotation[3]))

		// Nodes with no rotation decode as all zeroes; glTF's default is the identity.
		if rot.IsZero() {
			rot.SetIdentity()
		}

		if loadOptions.NormalizeRotations {
			rot.Normalize()
		}

		library.NodeRotations[node.Name] = rot

	}

	for _, gltfAnim := range doc.Animations {

		for _, channel := range gltfAnim.Channels {

			if channel.Target.Path != gltf.TRSRotation {
				continue
			}

			sampler := gltfAnim.Samplers[channel.Sampler]

			id, err := modeler.ReadAccessor(doc, doc.Accessors[sampler.Input], nil)

			if err != nil {
				return nil, err
			}

			inputData, ok := id.([]float32)

			if !ok {
				return nil, fmt.Errorf("animation %q: rotation sampler input is not a scalar float accessor", gltfAnim.Name)
			}

			od, err := modeler.ReadAccessor(doc, doc.Accessors[sampler.Output], nil)

			if err != nil {
				return nil, err
			}

			outputData, ok := od.([][4]float32)

			if !ok {
				return nil, fmt.Errorf("animation %q: rotation sampler output is not a VEC4 float accessor", gltfAnim.Name)
			}

			// Cubic spline samplers store [in-tangent, value, out-tangent] triplets; only
			// the value is kept, as the track always resamples by slerp.
			stride, offset := 1, 0
			if sampler.Interpolation == gltf.InterpolationCubicSpline {
				stride, offset = 3, 1
				log.Println("note: cubic spline rotation channel loaded; tangents are ignored and playback will slerp between keyframes")
			}

			trackName := gltfAnim.Name
			if channel.Target.Node != nil {
				trackName += "/" + doc.Nodes[*channel.Target.Node].Name
			}

			track := NewRotationTrack()

			for i := 0; i < len(inputData); i++ {

				p := outputData[i*stride+offset]
				rot := NewQuaternion(float64(p[0]), float64(p[1]), float64(p[2]), float64(p[3]))

				if loadOptions.NormalizeRotations {
					rot.Normalize()
				}

				track.AddKeyframe(float64(inputData[i]), rot)

			}

			library.Tracks[trackName] = track

		}

	}

	return library, nil

}

package quat3d

import (
	"bytes"
	"encoding/base64"
	"encoding/binary"
	"fmt"
	"math"
	"testing"
)

// buildTestGLTF assembles a minimal glTF document with two nodes and one animation: a
// "Spin" animation rotating the "Gizmo" node a half turn about Y across three keyframes,
// with the keyframe payload carried in an embedded base64 buffer.
func buildTestGLTF(t *testing.T) []byte {

	buf := &bytes.Buffer{}

	times := []float32{0, 1, 2}

	halfSqrt2 := float32(math.Sqrt2 / 2)
	rotations := [][4]float32{
		{0, 0, 0, 1},
		{0, halfSqrt2, 0, halfSqrt2},
		{0, 1, 0, 0},
	}

	if err := binary.Write(buf, binary.LittleEndian, times); err != nil {
		t.Fatal(err)
	}
	if err := binary.Write(buf, binary.LittleEndian, rotations); err != nil {
		t.Fatal(err)
	}

	document := `{
		"asset": {"version": "2.0"},
		"scene": 0,
		"scenes": [{"nodes": [0, 1]}],
		"nodes": [
			{"name": "Gizmo"},
			{"name": "Static", "rotation": [0, 0, 0.7071067811865476, 0.7071067811865476]}
		],
		"buffers": [{"byteLength": 60, "uri": "data:application/octet-stream;base64,%s"}],
		"bufferViews": [
			{"buffer": 0, "byteOffset": 0, "byteLength": 12},
			{"buffer": 0, "byteOffset": 12, "byteLength": 48}
		],
		"accessors": [
			{"bufferView": 0, "componentType": 5126, "count": 3, "type": "SCALAR", "min": [0], "max": [2]},
			{"bufferView": 1, "componentType": 5126, "count": 3, "type": "VEC4"}
		],
		"animations": [{
			"name": "Spin",
			"channels": [{"sampler": 0, "target": {"node": 0, "path": "rotation"}}],
			"samplers": [{"input": 0, "output": 1, "interpolation": "LINEAR"}]
		}]
	}`

	return []byte(fmt.Sprintf(document, base64.StdEncoding.EncodeToString(buf.Bytes())))

}

func TestLoadGLTFRotations(t *testing.T) {

	library, err := LoadGLTFData(buildTestGLTF(t), nil)

	if err != nil {
		t.Fatal(err)
	}

	static, ok := library.NodeRotations["Static"]
	if !ok {
		t.Fatal("Static node rotation missing")
	}
	if !static.EqualsWithMargin(NewQuaternionRotationZ(math.Pi/2), 1e-6) {
		t.Fatal("Static node rotation is", static)
	}

	// Nodes without a rotation get the glTF default, the identity.
	if gizmo := library.NodeRotations["Gizmo"]; !gizmo.Equals(NewQuaternionIdentity()) {
		t.Fatal("Gizmo node rotation is", gizmo)
	}

}

func TestLoadGLTFRotationTrack(t *testing.T) {

	library, err := LoadGLTFData(buildTestGLTF(t), nil)

	if err != nil {
		t.Fatal(err)
	}

	track, ok := library.Tracks["Spin/Gizmo"]
	if !ok {
		t.Fatal("Spin/Gizmo track missing; found tracks:", len(library.Tracks))
	}

	if l := track.Length(); l != 2 {
		t.Fatal("track length is", l)
	}

	// The keyframe payload went through float32, hence the wider margins.
	if !track.ValueAt(0).EqualsWithMargin(NewQuaternionIdentity(), 1e-6) {
		t.Fatal("track at 0 is", track.ValueAt(0))
	}

	if !track.ValueAt(1).EqualsWithMargin(NewQuaternionRotationY(math.Pi/2), 1e-6) {
		t.Fatal("track at 1 is", track.ValueAt(1))
	}

	if !track.ValueAt(0.5).EqualsWithMargin(NewQuaternionRotationY(math.Pi/4), 1e-6) {
		t.Fatal("track at 0.5 is", track.ValueAt(0.5))
	}

	if !track.ValueAt(2).EqualsWithMargin(NewQuaternionRotationY(math.Pi), 1e-6) {
		t.Fatal("track at 2 is", track.ValueAt(2))
	}

}

func TestLoadGLTFMalformedRotationOutput(t *testing.T) {

	buf := &bytes.Buffer{}

	times := []float32{0, 1, 2}

	// Rotation keyframes mistakenly written as VEC3s rather than quaternion VEC4s.
	positions := [][3]float32{
		{0, 0, 0},
		{0, 1, 0},
		{0, 2, 0},
	}

	if err := binary.Write(buf, binary.LittleEndian, times); err != nil {
		t.Fatal(err)
	}
	if err := binary.Write(buf, binary.LittleEndian, positions); err != nil {
		t.Fatal(err)
	}

	document := `{
		"asset": {"version": "2.0"},
		"nodes": [{"name": "Gizmo"}],
		"buffers": [{"byteLength": 48, "uri": "data:application/octet-stream;base64,%s"}],
		"bufferViews": [
			{"buffer": 0, "byteOffset": 0, "byteLength": 12},
			{"buffer": 0, "byteOffset": 12, "byteLength": 36}
		],
		"accessors": [
			{"bufferView": 0, "componentType": 5126, "count": 3, "type": "SCALAR", "min": [0], "max": [2]},
			{"bufferView": 1, "componentType": 5126, "count": 3, "type": "VEC3"}
		],
		"animations": [{
			"name": "Spin",
			"channels": [{"sampler": 0, "target": {"node": 0, "path": "rotation"}}],
			"samplers": [{"input": 0, "output": 1, "interpolation": "LINEAR"}]
		}]
	}`

	data := []byte(fmt.Sprintf(document, base64.StdEncoding.EncodeToString(buf.Bytes())))

	if _, err := LoadGLTFData(data, nil); err == nil {
		t.Fatal("loading a rotation channel with a VEC3 output accessor should error out")
	}

}

func TestLoadGLTFNormalizeOption(t *testing.T) {

	data := []byte(`{
		"asset": {"version": "2.0"},
		"nodes": [{"name": "Denorm", "rotation": [0, 0, 0.6, 0.9]}]
	}`)

	library, err := LoadGLTFData(data, nil)
	if err != nil {
		t.Fatal(err)
	}

	if rot := library.NodeRotations["Denorm"]; !rot.EqualsWithMargin(NewQuaternion(0, 0, 0.6, 0.9), 1e-9) {
		t.Fatal("rotation was altered without NormalizeRotations:", rot)
	}

	library, err = LoadGLTFData(data, &RotationLoadOptions{NormalizeRotations: true})
	if err != nil {
		t.Fatal(err)
	}

	rot := library.NodeRotations["Denorm"]

	if m := rot.Magnitude(); math.Abs(m-1) > StandardMargin {
		t.Fatal("NormalizeRotations left magnitude", m)
	}

	if !rot.EqualsWithMargin(NewQuaternion(0, 0, 0.6, 0.9).Unit(), 1e-9) {
		t.Fatal("normalized rotation is", rot)
	}

}

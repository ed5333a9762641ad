package quat3d

// quat3d is a quaternion rotation math library for representing and composing 3D rotations,
// with glTF rotation loading and tween-based interpolation on top of the core algebra.

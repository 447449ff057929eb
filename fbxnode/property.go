// Package fbxnode implements the universal FBX binary node/property tree
// and the 7500-version binary writer (FBX_FULL §4.1, §4.6).
package fbxnode

// Kind tags a Property's payload. The builder always states precision
// explicitly; it never goes through the value-guessing Number helper.
type Kind int

const (
	KindBool Kind = iota
	KindInt16
	KindInt32
	KindInt64
	KindFloat32
	KindFloat64
	KindString
	KindRaw
	KindBoolArray
	KindInt32Array
	KindInt64Array
	KindFloat32Array
	KindFloat64Array
)

// Property is a single typed scalar or typed array embedded in a Node.
type Property struct {
	Kind Kind

	Bool    bool
	Int16   int16
	Int32   int32
	Int64   int64
	Float32 float32
	Float64 float64
	Str     string
	Raw     []byte

	BoolArray    []bool
	Int32Array   []int32
	Int64Array   []int64
	Float32Array []float32
	Float64Array []float64
}

func Bool(v bool) Property       { return Property{Kind: KindBool, Bool: v} }
func Int16Val(v int16) Property  { return Property{Kind: KindInt16, Int16: v} }
func Int32Val(v int32) Property  { return Property{Kind: KindInt32, Int32: v} }
func Int64Val(v int64) Property  { return Property{Kind: KindInt64, Int64: v} }
func Float32Val(v float32) Property { return Property{Kind: KindFloat32, Float32: v} }
func Float64Val(v float64) Property { return Property{Kind: KindFloat64, Float64: v} }
func String(v string) Property   { return Property{Kind: KindString, Str: v} }
func Raw(v []byte) Property      { return Property{Kind: KindRaw, Raw: v} }

func BoolArray(v []bool) Property       { return Property{Kind: KindBoolArray, BoolArray: v} }
func Int32Array(v []int32) Property     { return Property{Kind: KindInt32Array, Int32Array: v} }
func Int64Array(v []int64) Property     { return Property{Kind: KindInt64Array, Int64Array: v} }
func Float32Array(v []float32) Property { return Property{Kind: KindFloat32Array, Float32Array: v} }
func Float64Array(v []float64) Property { return Property{Kind: KindFloat64Array, Float64Array: v} }

// Number selects a tag for an untagged number per §4.1: integers fitting
// signed 32-bit become Int32, larger integers become Int64, everything
// else becomes Float64. No build site in this module calls it; they all
// use the explicit constructors.
func Number(v float64) Property {
	if v == float64(int64(v)) {
		i := int64(v)
		if i >= -(1<<31) && i <= (1<<31-1) {
			return Int32Val(int32(i))
		}
		return Int64Val(i)
	}
	return Float64Val(v)
}

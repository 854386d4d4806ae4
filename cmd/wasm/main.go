//go:build js && wasm

package main

import (
	"encoding/json"
	"fmt"
	"math/big"
	"syscall/js"

	"github.com/smallyu/go-ecc/pkg/curve"
	"github.com/smallyu/go-ecc/pkg/field"
)

func main() {
	c := make(chan struct{}, 0)

	fmt.Println("Go ECC WASM Initialized")

	// Expose Go functions to JS
	js.Global().Set("GoECC", map[string]interface{}{
		"FieldOp":   js.FuncOf(FieldOp),
		"PointAdd":  js.FuncOf(PointAdd),
		"ScalarMul": js.FuncOf(ScalarMul),
	})

	<-c
}

// ElementDTO carries a field element as decimal strings across the JS
// boundary; big.Int does not survive json round trips from JS numbers.
type ElementDTO struct {
	Num   string `json:"num"`
	Prime string `json:"prime"`
}

func (d ElementDTO) toElement() (field.Element, error) {
	num, ok := new(big.Int).SetString(d.Num, 10)
	if !ok {
		return field.Element{}, fmt.Errorf("invalid num %q", d.Num)
	}
	prime, ok := new(big.Int).SetString(d.Prime, 10)
	if !ok {
		return field.Element{}, fmt.Errorf("invalid prime %q", d.Prime)
	}
	return field.New(num, prime)
}

func elementDTO(e field.Element) ElementDTO {
	return ElementDTO{Num: e.Num().String(), Prime: e.Prime().String()}
}

// PointDTO carries a curve point; Infinity marks the identity and then
// X/Y are ignored.
type PointDTO struct {
	Infinity bool       `json:"infinity"`
	X        ElementDTO `json:"x"`
	Y        ElementDTO `json:"y"`
	A        ElementDTO `json:"a"`
	B        ElementDTO `json:"b"`
}

func (d PointDTO) toPoint() (curve.Point, error) {
	a, err := d.A.toElement()
	if err != nil {
		return curve.Point{}, err
	}
	b, err := d.B.toElement()
	if err != nil {
		return curve.Point{}, err
	}
	if d.Infinity {
		return curve.Infinity(a, b), nil
	}
	x, err := d.X.toElement()
	if err != nil {
		return curve.Point{}, err
	}
	y, err := d.Y.toElement()
	if err != nil {
		return curve.Point{}, err
	}
	return curve.New(x, y, a, b)
}

func pointDTO(p curve.Point) PointDTO {
	dto := PointDTO{
		Infinity: p.IsInfinity(),
		A:        elementDTO(p.A()),
		B:        elementDTO(p.B()),
	}
	if x, y, ok := p.Coordinates(); ok {
		dto.X = elementDTO(x)
		dto.Y = elementDTO(y)
	}
	return dto
}

func respond(v interface{}) interface{} {
	respBytes, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprintf("error: marshal: %v", err)
	}
	return string(respBytes)
}

// FieldOp applies a binary field operation.
// Arguments:
// 0: operation name ("add", "sub", "mul", "div")
// 1: JSON ElementDTO (left operand)
// 2: JSON ElementDTO (right operand)
// Returns:
// JSON ElementDTO or an error string
func FieldOp(this js.Value, args []js.Value) interface{} {
	if len(args) != 3 {
		return "error: expected 3 arguments (op, jsonA, jsonB)"
	}

	var dtoA, dtoB ElementDTO
	if err := json.Unmarshal([]byte(args[1].String()), &dtoA); err != nil {
		return fmt.Sprintf("error: invalid json: %v", err)
	}
	if err := json.Unmarshal([]byte(args[2].String()), &dtoB); err != nil {
		return fmt.Sprintf("error: invalid json: %v", err)
	}

	a, err := dtoA.toElement()
	if err != nil {
		return fmt.Sprintf("error: %v", err)
	}
	b, err := dtoB.toElement()
	if err != nil {
		return fmt.Sprintf("error: %v", err)
	}

	var result field.Element
	switch op := args[0].String(); op {
	case "add":
		result, err = a.Add(b)
	case "sub":
		result, err = a.Sub(b)
	case "mul":
		result, err = a.Mul(b)
	case "div":
		result, err = a.Div(b)
	default:
		return fmt.Sprintf("error: unknown operation %q", op)
	}
	if err != nil {
		return fmt.Sprintf("error: %v", err)
	}

	return respond(elementDTO(result))
}

// PointAdd adds two curve points.
// Arguments:
// 0: JSON PointDTO
// 1: JSON PointDTO
// Returns:
// JSON PointDTO or an error string
func PointAdd(this js.Value, args []js.Value) interface{} {
	if len(args) != 2 {
		return "error: expected 2 arguments (jsonP, jsonQ)"
	}

	var dtoP, dtoQ PointDTO
	if err := json.Unmarshal([]byte(args[0].String()), &dtoP); err != nil {
		return fmt.Sprintf("error: invalid json: %v", err)
	}
	if err := json.Unmarshal([]byte(args[1].String()), &dtoQ); err != nil {
		return fmt.Sprintf("error: invalid json: %v", err)
	}

	p, err := dtoP.toPoint()
	if err != nil {
		return fmt.Sprintf("error: %v", err)
	}
	q, err := dtoQ.toPoint()
	if err != nil {
		return fmt.Sprintf("error: %v", err)
	}

	sum, err := p.Add(q)
	if err != nil {
		return fmt.Sprintf("error: %v", err)
	}

	return respond(pointDTO(sum))
}

// ScalarMul multiplies a curve point by an integer coefficient.
// Arguments:
// 0: coefficient as a decimal string
// 1: JSON PointDTO
// Returns:
// JSON PointDTO or an error string
func ScalarMul(this js.Value, args []js.Value) interface{} {
	if len(args) != 2 {
		return "error: expected 2 arguments (coefficient, jsonP)"
	}

	k, ok := new(big.Int).SetString(args[0].String(), 10)
	if !ok {
		return fmt.Sprintf("error: invalid coefficient %q", args[0].String())
	}

	var dtoP PointDTO
	if err := json.Unmarshal([]byte(args[1].String()), &dtoP); err != nil {
		return fmt.Sprintf("error: invalid json: %v", err)
	}
	p, err := dtoP.toPoint()
	if err != nil {
		return fmt.Sprintf("error: %v", err)
	}

	product, err := p.ScalarMul(k)
	if err != nil {
		return fmt.Sprintf("error: %v", err)
	}

	return respond(pointDTO(product))
}

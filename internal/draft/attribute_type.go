package draft

import (
	"errors"
	"slices"

	"github.com/aws/aws-sdk-go-v2/aws"
	sqstypes "github.com/aws/aws-sdk-go-v2/service/sqs/types"
)

var ErrUnknownAttributeType = errors.New("unknown attribute type")

// AttributeType is the SQS data type of a message attribute.
type AttributeType string

const (
	AttributeTypeString AttributeType = "String"
	AttributeTypeNumber AttributeType = "Number"
	AttributeTypeBinary AttributeType = "Binary"
)

type attributeTypeSpec struct {
	label   string
	numeric bool
	toWire  func(t AttributeType, value string) sqstypes.MessageAttributeValue
}

// catalog is the only place attribute types are declared.
// The validator and the request builder both read it.
var (
	catalogOrder = []AttributeType{AttributeTypeString, AttributeTypeNumber, AttributeTypeBinary}
	catalog      = map[AttributeType]attributeTypeSpec{
		AttributeTypeString: {label: "Text", toWire: stringWireValue},
		AttributeTypeNumber: {label: "Number", numeric: true, toWire: stringWireValue},
		AttributeTypeBinary: {label: "Binary", toWire: binaryWireValue},
	}
)

// AttributeTypes returns the catalog in display order.
func AttributeTypes() []AttributeType {
	return slices.Clone(catalogOrder)
}

func (t AttributeType) String() string {
	return string(t)
}

func (t AttributeType) IsValid() bool {
	_, ok := catalog[t]
	return ok
}

// Label returns the human-readable name of the type, or an empty string for unknown types.
func (t AttributeType) Label() string {
	return catalog[t].label
}

func (t AttributeType) isNumeric() bool {
	return catalog[t].numeric
}

func (t AttributeType) wireValue(value string) (sqstypes.MessageAttributeValue, error) {
	spec, ok := catalog[t]
	if !ok {
		return sqstypes.MessageAttributeValue{}, ErrUnknownAttributeType
	}
	return spec.toWire(t, value), nil
}

func stringWireValue(t AttributeType, value string) sqstypes.MessageAttributeValue {
	return sqstypes.MessageAttributeValue{
		DataType:    aws.String(string(t)),
		StringValue: aws.String(value),
	}
}

func binaryWireValue(t AttributeType, value string) sqstypes.MessageAttributeValue {
	return sqstypes.MessageAttributeValue{
		DataType:    aws.String(string(t)),
		BinaryValue: []byte(value),
	}
}

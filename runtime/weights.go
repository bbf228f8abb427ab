package runtime

// Weights are the opaque per-operation cost constants named throughout
// §4. Their exact values are deliberately not part of the language
// contract (spec.md §1: "the concrete cost constants table, treated as
// opaque named weights") — only their relative presence and the points at
// which they are charged are. These values keep a full script runnable
// inside Budget while still making BudgetExceeded reachable in §8's
// scenario 6.
const (
	VarHardware      = 10 // gebruik <letter>
	KompasHardware   = 25 // gebruik kompas
	ZwOogHardware    = 25 // gebruik zwOog
	KleurOogHardware = 30 // gebruik kleurOog

	ActionSoftware     = 5 // compiling a draaiLinks/draaiRechts/stapVooruit/stapAchteruit line
	ZolangSoftware     = 8 // compiling a zolang header
	AlsSoftware        = 8 // compiling an als header
	AssignmentSoftware = 4 // compiling an assignment line

	TurnLeftUsage  = 2
	TurnRightUsage = 2
	PushObstacle   = 6

	AssignmentUsage = 3
	OperationUsage  = 2
	ComparisonUsage = 2

	KompasUsage   = 1
	ZwOogUsage    = 1
	KleurOogUsage = 1
)

// HardwareWeight returns the parse-time charge for enabling a sensor.
func HardwareWeight(s Sensor) int {
	switch s {
	case Kompas:
		return KompasHardware
	case ZwOog:
		return ZwOogHardware
	case KleurOog:
		return KleurOogHardware
	}
	return 0
}

// SensorUsageWeight returns the evaluation-time charge for reading a sensor.
func SensorUsageWeight(s Sensor) int {
	switch s {
	case Kompas:
		return KompasUsage
	case ZwOog:
		return ZwOogUsage
	case KleurOog:
		return KleurOogUsage
	}
	return 0
}

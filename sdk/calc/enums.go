package calc

type Op string

const (
	OpPing  Op = "ping"
	OpExec  Op = "exec"
	OpDump  Op = "dump"
	OpReset Op = "reset"
)

// Fatal names the arithmetic failure that ended a session.
type Fatal string

const (
	FatalOverflow     Fatal = "overflow"
	FatalZeroDivision Fatal = "zero_division"
)

const (
	PathWS     = "/ws"
	PathEval   = "/eval"
	PathHealth = "/healthz"
)

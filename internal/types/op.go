package types

type Op byte

const (
	Op__PRINT  Op = '?'
	Op__ASSIGN Op = '='
	Op__ADD    Op = '+'
	Op__MUL    Op = '*'
	Op__POW    Op = '^'
	Op__DIV    Op = '/'
)

var ops = map[Op]string{
	Op__PRINT:  "print",
	Op__ASSIGN: "assign",
	Op__ADD:    "add",
	Op__MUL:    "multiply",
	Op__POW:    "power",
	Op__DIV:    "divide",
}

// ParseOp returns the operator written as c.
func ParseOp(c byte) (Op, bool) {
	op := Op(c)
	_, ok := ops[op]
	return op, ok
}

// HasOperand reports whether op takes a right hand side.
func (o Op) HasOperand() bool {
	return o != Op__PRINT
}

func (o Op) String() string {
	if name, ok := ops[o]; ok {
		return name
	}
	return "unknown"
}

package smt

import (
	"fmt"

	"github.com/pkg/errors"
)

// Relation is the predicate of an assertion between two values.
type Relation int

const (
	EQ Relation = iota
	DISTINCT
	// LT, LE, GT and GE follow the signedness of the scalar type.
	LT
	LE
	GT
	GE
	ULT
	ULE
	UGT
	UGE
)

var relationNames = [...]string{
	EQ:       "==",
	DISTINCT: "!=",
	LT:       "<",
	LE:       "<=",
	GT:       ">",
	GE:       ">=",
	ULT:      "<u",
	ULE:      "<=u",
	UGT:      ">u",
	UGE:      ">=u",
}

func (r Relation) String() string {
	if r < 0 || int(r) >= len(relationNames) {
		return fmt.Sprintf("Relation(%d)", int(r))
	}
	return relationNames[r]
}

func ParseRelation(s string) (Relation, error) {
	for i, n := range relationNames {
		if n == s {
			return Relation(i), nil
		}
	}
	return 0, errors.Errorf("unknown relation '%s'", s)
}

// predicate returns the SMT-LIB2 function symbol of r.
func (r Relation) predicate(signed bool) string {
	switch r {
	case EQ:
		return "="
	case DISTINCT:
		return "distinct"
	case LT:
		if signed {
			return "bvslt"
		}
		return "bvult"
	case LE:
		if signed {
			return "bvsle"
		}
		return "bvule"
	case GT:
		if signed {
			return "bvsgt"
		}
		return "bvugt"
	case GE:
		if signed {
			return "bvsge"
		}
		return "bvuge"
	case ULT:
		return "bvult"
	case ULE:
		return "bvule"
	case UGT:
		return "bvugt"
	case UGE:
		return "bvuge"
	default:
		panic(fmt.Sprintf("unknown relation '%s'", r))
	}
}

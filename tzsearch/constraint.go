package tzsearch

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"slices"
	"strings"
)

/***** ConstraintLiteral *****/

// LiteralKind discriminates the three ways a constraint literal can describe a timezone.
type LiteralKind int

const (
	// AbbrevLiteral matches a zone whose abbreviation at the anchor equals the
	// given name, or whose zone identifier equals it exactly.
	AbbrevLiteral LiteralKind = iota

	// ZoneLiteral matches a zone identifier exactly, independent of the anchor.
	ZoneLiteral

	// OffsetLiteral matches a zone whose UTC offset at the anchor equals the
	// given minutes east of UTC.
	OffsetLiteral
)

// ConstraintLiteral is one atomic timezone description.
type ConstraintLiteral struct {
	kind          LiteralKind
	name          string
	offsetMinutes int
}

// Abbrev creates a literal matching an abbreviation ("EST") or an exact zone identifier.
func Abbrev(name AbbrevString) ConstraintLiteral {
	return ConstraintLiteral{kind: AbbrevLiteral, name: name}
}

// Zone creates a literal matching a zone identifier ("America/New_York") exactly.
func Zone(id ZoneIDString) ConstraintLiteral {
	return ConstraintLiteral{kind: ZoneLiteral, name: id}
}

// Offset creates a literal matching a UTC offset in minutes east of UTC.
func Offset(minutes int) ConstraintLiteral {
	return ConstraintLiteral{kind: OffsetLiteral, offsetMinutes: minutes}
}

func (cl ConstraintLiteral) Kind() LiteralKind {
	return cl.kind
}

func (cl ConstraintLiteral) Name() string {
	return cl.name
}

func (cl ConstraintLiteral) OffsetMinutes() int {
	return cl.offsetMinutes
}

// String renders the literal in its canonical serialization form.
func (cl ConstraintLiteral) String() string {
	switch cl.kind {
	case ZoneLiteral:
		return "zone:" + cl.name
	case OffsetLiteral:
		return fmt.Sprintf("offset:%d", cl.offsetMinutes)
	default:
		return "abbrev:" + cl.name
	}
}

func (cl ConstraintLiteral) isIncomplete() bool {
	return cl.kind != OffsetLiteral && cl.name == ""
}

/***** Constraint *****/

// Constraint is an ordered group of alternative literals; a zone satisfies the
// constraint when ANY alternative matches. Order is semantic: it encodes the
// caller's preference among alternatives and is preserved through sanitization.
type Constraint struct {
	alternatives []ConstraintLiteral
}

func (c Constraint) Alternatives() []ConstraintLiteral {
	return c.alternatives
}

/***** ConstraintSet *****/

// ConstraintSet is an ordered AND-list of constraints. A zone survives the set
// when it satisfies every constraint. The empty set is valid and matches every zone.
type ConstraintSet struct {
	constraints []Constraint
}

func (cs ConstraintSet) Constraints() []Constraint {
	return cs.constraints
}

func (cs ConstraintSet) IsEmpty() bool {
	return len(cs.constraints) == 0
}

// Serialize returns a deterministic canonical text form of the constraint set,
// suitable for cache keys, logging, and hashing.
func (cs ConstraintSet) Serialize() string {
	var sb strings.Builder

	for i, constraint := range cs.constraints {
		if i > 0 {
			sb.WriteString(" ")
		}

		sb.WriteString(fmt.Sprintf("constraint:%d [", i))

		for j, literal := range constraint.alternatives {
			if j > 0 {
				sb.WriteString(" ")
			}

			sb.WriteString(literal.String())
		}

		sb.WriteString("]")
	}

	return sb.String()
}

// Hash returns a deterministic hash of the constraint set in the form
// "sha256:" followed by 64 hex characters.
func (cs ConstraintSet) Hash() string {
	sum := sha256.Sum256([]byte(cs.Serialize()))

	return "sha256:" + hex.EncodeToString(sum[:])
}

/***** ConstraintSetBuilder *****/

// ConstraintSetBuilder builds a generic constraint set to be evaluated by a Resolver
// against a rules provider. It only allows "useful" combinations:
//
//   - empty set (matches any zone)
//   - (literal)
//   - (literal OR literal...)
//   - (literal) AND (literal)
//   - ((literal OR literal...) AND (literal OR literal...) ...) -> multiple Constraint(s)
type ConstraintSetBuilder interface {
	// Matching starts a new Constraint.
	Matching() EmptyConstraintBuilder

	// MatchingAnyZone directly creates an empty ConstraintSet.
	MatchingAnyZone() ConstraintSet
}

type EmptyConstraintBuilder interface {
	// AnyOf adds one or multiple alternative literals to the current Constraint.
	//
	// It sanitizes the input:
	//	- removing incomplete literals (empty abbreviation or zone id)
	//	- removing duplicate literals, keeping the first occurrence
	//	- preserving order (alternatives are tried in order)
	AnyOf(literal ConstraintLiteral, literals ...ConstraintLiteral) CompletedConstraintBuilder
}

type CompletedConstraintBuilder interface {
	// AndMatching finalizes the current Constraint and starts a new one.
	AndMatching() EmptyConstraintBuilder

	// Finalize returns the ConstraintSet once it has at least one Constraint with at least one literal.
	Finalize() ConstraintSet
}

// constraintSetBuilder implements all the interfaces of ConstraintSetBuilder
type constraintSetBuilder struct {
	set               ConstraintSet
	currentConstraint Constraint
}

// BuildConstraintSet creates a ConstraintSetBuilder which must eventually be
// finalized with Finalize() or MatchingAnyZone().
func BuildConstraintSet() ConstraintSetBuilder {
	return constraintSetBuilder{}
}

// Matching starts a new Constraint.
func (cb constraintSetBuilder) Matching() EmptyConstraintBuilder {
	cb.currentConstraint = Constraint{}

	return cb
}

// AnyOf adds one or multiple alternative literals to the current Constraint expecting ANY literal to match.
//
// It sanitizes the input:
//   - removing incomplete literals (empty abbreviation or zone id)
//   - removing duplicate literals, keeping the first occurrence
//   - preserving order (alternatives are tried in order)
func (cb constraintSetBuilder) AnyOf(
	literal ConstraintLiteral,
	literals ...ConstraintLiteral,
) CompletedConstraintBuilder {

	cb.currentConstraint.alternatives = append(
		cb.currentConstraint.alternatives,
		cb.sanitizeLiterals(literal, literals...)...,
	)

	return cb
}

func (cb constraintSetBuilder) sanitizeLiterals(
	literal ConstraintLiteral,
	literals ...ConstraintLiteral,
) []ConstraintLiteral {

	allLiterals := append([]ConstraintLiteral{literal}, literals...)
	allLiterals = slices.DeleteFunc(
		allLiterals,
		func(l ConstraintLiteral) bool {
			return l.isIncomplete()
		})

	// keep the first occurrence, order is semantic
	deduped := make([]ConstraintLiteral, 0, len(allLiterals))
	for _, l := range allLiterals {
		if !slices.Contains(deduped, l) {
			deduped = append(deduped, l)
		}
	}

	return slices.Clip(deduped)
}

// AndMatching finalizes the current Constraint and starts a new one.
func (cb constraintSetBuilder) AndMatching() EmptyConstraintBuilder {
	cb.set.constraints = append(cb.set.constraints, cb.currentConstraint)
	cb.currentConstraint = Constraint{}

	return cb
}

// MatchingAnyZone directly creates an empty ConstraintSet.
func (cb constraintSetBuilder) MatchingAnyZone() ConstraintSet {
	return cb.set
}

// Finalize returns the ConstraintSet once it has at least one Constraint with at least one literal.
func (cb constraintSetBuilder) Finalize() ConstraintSet {
	cb.set.constraints = append(cb.set.constraints, cb.currentConstraint)

	return cb.set
}

// Package plan is a reference catalog of relational operators and scalar
// expressions built on the ir node contract. It exists to exercise and
// demonstrate the tree machinery (tests, the planview tool); dialect
// frontends define their own catalogs against the same contract.
//
// Plans and expressions are two node families. A plan's children are
// plans; the expressions a plan holds (a filter condition, a projection
// list) sit in opaque argument slots and form their own trees among
// themselves, so plan transformations leave them untouched by
// construction.
package plan

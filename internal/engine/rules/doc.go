// Package rules turns card data into numbers for one fight: what a single
// ability contributes, what a race or class adds up to, and what a monster's
// tags change. Everything here is a pure function of its inputs. Nil races,
// classes, helpers and empty tag maps all resolve to zero or false.
package rules

// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

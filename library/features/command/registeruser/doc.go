// Package registeruser implements the Register User use case.
//
// Registration always succeeds: there is no duplicate check, so registering the same person
// twice stores two identical rows.
package registeruser

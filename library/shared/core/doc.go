// Package core contains the domain model of the library desk:
// book issue records kept in a ledger and user registrations kept in a registry.
//
// Everything here is pure. Loading and saving the ledger and the registry happens in the shell,
// business rules are applied by the Decide functions of the feature slices.
//
// In Domain-Driven Design or Hexagonal Architecture terminology, this would be
// called the 'domain' layer.
package core

// Package services orchestrates entity lifecycle: validation, credential
// derivation and store access. Entities are created only through these
// operations, never by direct store writes.
//
// Services defined in this package:
//   - StudentService: student registration, listing, subject sets, department membership
//   - StaffService: staff registration and listing
//   - SubjectService: subject catalog and prerequisites
//   - DepartmentService: department catalog
//   - AuthService: principal authentication
package services

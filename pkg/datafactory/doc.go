// Package datafactory builds boundary and equivalence-class datasets for
// parameterized tests: names, emails, usernames, labels, environments and
// ids, in valid and invalid flavours.
//
// # Datasets
//
//	┌────────────────────┬─────────────┬───────┐
//	│ Method             │ Expectation │ Count │
//	├────────────────────┼─────────────┼───────┤
//	│ GenerateStrings    │ accept      │ 7     │
//	│ ValidData          │ accept      │ 7/6   │
//	│ ValidNames         │ accept      │ 15    │
//	│ ValidEmails        │ accept      │ 8     │
//	│ ValidUsernames     │ accept      │ 4     │
//	│ ValidLabels        │ accept      │ 2     │
//	│ ValidEnvironments  │ accept      │ 3     │
//	│ InvalidNames       │ reject      │ 7     │
//	│ InvalidEmails      │ reject      │ 10    │
//	│ InvalidValues      │ reject      │ 10/9  │
//	│ InvalidIDs         │ reject      │ 4     │
//	└────────────────────┴─────────────┴───────┘
//
// InvalidValues returns 9 values for InterfaceUI and 10 otherwise.
// ValidDataFor drops the HTML value for InterfaceUI. Both fail with an
// *InvalidArgumentError when given an Interface outside the declared
// constants.
//
// # One-datapoint mode
//
// A Factory built with WithOneDatapoint(true) truncates every dataset to its
// first element. The mode lives on the Factory rather than in a global, so a
// test that needs the other mode derives a copy:
//
//	full := datafactory.New(datafactory.WithSeed(42))
//	fast := full.OneDatapoint(true)
//
//	fast.ValidNames() // one element, equal to full.ValidNames()[0]
//
// Values marked random in the tables are drawn from the generator package;
// WithSeed makes them reproducible.
package datafactory

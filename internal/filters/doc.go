// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package filters narrows response items on the client side.
//
// A filter spec is a comma (or $AWSOPS_FILTER_DELIM) separated list of
// key-operator-target expressions. Every expression must hold for an item to
// be kept.
//
// Operators, each negatable with a leading !:
//
//   - = : exact match
//   - ~ : case-insensitive match
//   - ^ : prefix
//   - < : less than (numeric when both sides are numbers)
//   - > : greater than
//   - @ : substring, or membership for lists and maps
//   - / : regular expression
//
// Examples:
//
//   - "Status=ACTIVE"
//   - "Name^prod-"
//   - "ComputePlatform!~awslambda"
//   - "ResiliencyScore>0.8"
//   - "Principals@arn:aws:iam::123456789012:root"
//
// A key names an attr by its OutputKey (see the attrs package). A key that
// matches no attr is resolved as a driller path into the item itself.
package filters

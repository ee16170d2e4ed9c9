// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package paginate drives continuation-token pagination for AWS list
// operations.
//
// A request is sent, the response's continuation token is read and, while it
// is present and the caller has not asked for manual paging, copied onto the
// request before it is sent again. Pages are yielded as they arrive. A failed
// call ends the sequence with that error; pages already yielded stay
// delivered.
package paginate

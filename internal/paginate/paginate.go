// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package paginate

import (
	"context"
	"iter"

	"github.com/tfctl/awsops/internal/log"
)

// Caller issues a single request. It is typically a closure over an SDK
// client method.
type Caller[In, Out any] func(context.Context, *In) (*Out, error)

// Cursor binds the continuation token field of a request/response pair.
// Get reads the token from a response; Set writes it onto a request.
type Cursor[In, Out any] struct {
	Get func(*Out) *string
	Set func(*In, *string)
}

// Token returns the continuation token carried by out, or "" when the cursor
// is nil or the response has none.
func (c *Cursor[In, Out]) Token(out *Out) string {
	if c == nil || c.Get == nil || out == nil {
		return ""
	}
	if tok := c.Get(out); tok != nil {
		return *tok
	}
	return ""
}

// Options tune a pagination run.
type Options struct {
	// Manual stops after the first call regardless of the returned token.
	Manual bool
}

// Pages returns the lazy sequence of responses for in. The request is copied
// before the first call, so the caller's value is never mutated and the
// sequence may not be restarted to resume from a later page. A nil cursor
// means the operation is not paginated and exactly one call is made.
//
// The sequence ends when the returned token is absent or empty, after one
// call in manual mode, when the consumer stops ranging, or after yielding an
// error.
func Pages[In, Out any](
	ctx context.Context,
	in *In,
	call Caller[In, Out],
	cursor *Cursor[In, Out],
	opts Options,
) iter.Seq2[*Out, error] {
	return func(yield func(*Out, error) bool) {
		req := new(In)
		if in != nil {
			*req = *in
		}

		for page := 1; ; page++ {
			if err := ctx.Err(); err != nil {
				yield(nil, err)
				return
			}

			log.Debugf("page request: page=%d", page)
			out, err := call(ctx, req)
			if err != nil {
				log.Debugf("page err: page=%d err=%v", page, err)
				yield(nil, err)
				return
			}

			if !yield(out, nil) {
				return
			}

			if cursor == nil || opts.Manual {
				return
			}

			tok := cursor.Get(out)
			if tok == nil || *tok == "" {
				log.Debugf("last page: page=%d", page)
				return
			}
			log.Tracef("next token: page=%d token=%s", page, *tok)

			next := *tok
			cursor.Set(req, &next)
		}
	}
}

// Collect drains Pages into a slice. It returns the pages gathered before an
// error alongside that error.
func Collect[In, Out any](
	ctx context.Context,
	in *In,
	call Caller[In, Out],
	cursor *Cursor[In, Out],
	opts Options,
) ([]*Out, error) {
	var pages []*Out
	for out, err := range Pages(ctx, in, call, cursor, opts) {
		if err != nil {
			return pages, err
		}
		pages = append(pages, out)
	}
	return pages, nil
}

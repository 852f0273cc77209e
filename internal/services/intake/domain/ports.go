package domain

import "context"

// StepperPort drives the keyed conversation state machine.
// Input reports handled=false when the chat has no active flow so the
// caller can ignore freeform chatter.
type StepperPort interface {
	StartRegister(ctx context.Context, chat int64) string
	StartPlan(ctx context.Context, chat int64) string
	Input(ctx context.Context, chat int64, text string) (reply string, handled bool, err error)
	Cancel(chat int64) string
	Active(chat int64) bool
}

package telegram

const (
	UserStateKey = "user_state:%d"
	UserDataKey  = "user_data:%d"
)

// /analyze conversation states
const (
	StateIdle = iota
	StateWaitingSymbol
	StateWaitingInvestmentAmount
	StateWaitingQuestion
)

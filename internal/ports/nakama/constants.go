package nakama

// RPC ids registered with the Nakama runtime. The client UI drives the whole
// scorer through these.
const (
	RpcStart        = "ouiste_start"
	RpcState        = "ouiste_state"
	RpcSubmitBets   = "ouiste_submit_bets"
	RpcSubmitTricks = "ouiste_submit_tricks"
	RpcSave         = "ouiste_save"
	RpcHistory      = "ouiste_history"
	RpcResume       = "ouiste_resume"
	RpcAbandon      = "ouiste_abandon"
	RpcBidHint      = "ouiste_bid_hint"
	RpcShare        = "ouiste_share"
	RpcShareVerify  = "ouiste_share_verify"
)

// Environment keys read from the Nakama runtime env.
const (
	envShareSecret = "ouiste_share_secret"
)

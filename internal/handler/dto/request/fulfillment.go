package request

type TransitionRequest struct {
	Action string `json:"action" binding:"required,oneof=claim unclaim serve unserve"`
}

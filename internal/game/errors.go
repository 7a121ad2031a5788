package game

import "errors"

// Rejection reasons surfaced to the originating client only. None of
// these ever take the session down.
var (
	ErrNameTaken           = errors.New("username already taken")
	ErrUnknownPlayer       = errors.New("you are not part of the game")
	ErrJudgeCannotSubmit   = errors.New("the card czar cannot submit cards")
	ErrDuplicateSubmission = errors.New("you have already submitted cards for this round")
	ErrInvalidCardCount    = errors.New("wrong number of cards for this prompt")
	ErrCardNotInHand       = errors.New("submitted card is not in your hand")
	ErrNoActiveRound       = errors.New("no round is awaiting submissions")
	ErrNoSuchSubmission    = errors.New("no submission matches the selected cards")
)

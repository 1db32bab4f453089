package domain

type CtxKey string

const (
	KeyAccountID CtxKey = "AccountID"
	KeyEmail     CtxKey = "Email"
	KeyRole      CtxKey = "Role"
)

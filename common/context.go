package common

type ContextKey string

const ContextStatusCode ContextKey = "p.status_code"

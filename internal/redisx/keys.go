package redisx

import "time"

const (
	// Cache of a single product document: product:{id} -> product JSON
	KeyProduct = "product:%s"
)

var (
	TTLProduct = 5 * time.Minute
)

package maxflow

import "errors"

// ErrSourceNotFound is returned when source is not a node of the graph.
var ErrSourceNotFound = errors.New("maxflow: source vertex not found")

// ErrSinkNotFound is returned when sink is not a node of the graph.
var ErrSinkNotFound = errors.New("maxflow: sink vertex not found")

// Package server exposes rendering over HTTP with echo.
//
//	GET  /healthz         liveness probe
//	GET  /v1/variations   configured variations, in order
//	POST /v1/render       body: relationship table text
//	     ?variation=NAME  default: the first variation
//	     &format=FMT      dot (default), json, or a Graphviz format when a
//	                      drawer is configured
//	     &entities=A,B    recognized entity filter
//
// Parse warnings are counted in the X-Relgraph-Warnings response header.
// Errors are JSON objects {"error": "..."}: 400 for bad parameters, 404 for
// an unknown variation, 422 for a table that cannot be parsed or laid out,
// 501 when a Graphviz format is requested without a drawer.
package server

// Package clientip resolves the caller address of an HTTP request from
// trusted proxy headers or the connection's remote address.
//
//	res := clientip.New("CF-Connecting-IP", "X-Forwarded-For")
//	ip := res.FromRequest(r)
//
// Only list headers that a proxy in front of the service overwrites;
// clients can set any of them otherwise.
package clientip

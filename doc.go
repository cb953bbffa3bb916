// Package jwtparser serializes payloads into compact HMAC-signed tokens and
// parses them back.
//
// A token is three base64url segments joined by ".": a JSON header
// {"typ":"JWT","alg":...}, the JSON payload, and the HMAC of the first two
// encoded segments. By default the "alg" header carries the hash function
// name (sha256, sha384, sha512); WithHeaderNaming(HeaderNamingJOSE)
// switches to HS256, HS384 and HS512 for use with other JWT libraries.
//
//	token, err := jwtparser.Serialize(map[string]any{"sub": "u1", "iat": 1000}, key, jwtparser.HS256)
//	claims, err := jwtparser.Unserialize(token, key, true)
//
// With verification enabled Unserialize checks the signature in constant
// time and requires an integer "iat" claim that is not in the future. No
// other claims are interpreted. Keys are used only for the duration of a
// call and are never stored or logged.
package jwtparser

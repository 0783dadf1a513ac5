package common

// AccessTokenHeaderName is the gRPC metadata key used to carry the
// access token on outbound requests.
const AccessTokenHeaderName = "access_token"

// AuthorizationHeaderName is accepted as an alternative token carrier in the
// "Bearer <token>" form.
const AuthorizationHeaderName = "authorization"

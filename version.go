package raconstants

// Version is the library version, exposed for host introspection.
const Version = "0.2.0"

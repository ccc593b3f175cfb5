package minimatic

// Version of the evaluation core, reported by the command line front end.
const Version = "0.1.0"

package communicator

// Version is sent in the User-Agent header.
const Version = "1.0.0"

// UserAgent identifies this client to the server.
const UserAgent = "redmine-go/" + Version

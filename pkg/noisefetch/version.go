package noisefetch

// Version is the version of the noisefetch library.
const Version = "1.0.0"

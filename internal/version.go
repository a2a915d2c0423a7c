package internal

// Version is the phonemize release version
const Version = "0.1.0"

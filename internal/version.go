package internal

// Version is the current scriptvocab release
var Version = "0.2.0"

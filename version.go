package lattice

// Version is the current release of the lattice library.
const Version = "0.1.0"

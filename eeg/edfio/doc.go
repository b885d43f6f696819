// Package edfio bridges EDF/EDF+ recordings to the in-memory signal matrix:
// loading all channels of a file into a [signal.Signal] with its sampling
// configuration, and writing cleaned signals back out as EDF.
package edfio

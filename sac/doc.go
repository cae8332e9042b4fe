// Package sac reads and writes binary SAC (Seismic Analysis Code) files.
//
// A SAC file is a 632-byte header of fixed-offset 4-byte words (70 floats,
// 40 integers, 192 bytes of fixed-width strings) followed by the sample data
// as 32-bit floats. A single static descriptor table drives both the decoder
// and the encoder; there is no per-field parsing code.
//
// Byte order is detected on read from the header version word and files are
// written little-endian. Unset header fields carry the SAC sentinel -12345
// in its float, integer, and string variants.
//
// Only evenly sampled time-series files (iftype ITIME) are supported.
package sac

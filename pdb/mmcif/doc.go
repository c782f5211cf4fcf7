// Package mmcif reads coordinates from files in mmCIF format.
//
// Reading mmcif files is interesting because they are so big, but we
// want very little from them. Some features of the format make it
// simpler.
// 1. The first character on a line is decisive. A data item starts
// with "_", a table starts with loop_, a multi-line value starts with
// ";" and ends with a line starting with ";".
// 2. The protein data bank keeps to a fixed style, so the atom_site
// table has one atom per line. We still cope with rows that are spread
// over lines.
//
// Everything except the atom_site table is skipped. From that we take
// the first model, protein residues and the atoms the caller asks for.
// Chains are named by auth_asym_id, which is what the old format calls
// the chain, and numbered by auth_seq_id. If the auth_ columns are
// missing, we fall back to the label_ ones.
//
// Notes about the format.
// A question mark, ?, means a missing value.
// A dot, ., means not appropriate or deliberately left out.
package mmcif

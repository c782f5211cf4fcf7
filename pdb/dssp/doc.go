// Package dssp assigns secondary structure to protein chains using
// the Kabsch and Sander hydrogen bond definitions.
//
// Run takes a slice of chains, as they come from the pdb reader, and
// treats them as one ordered list of residues. Everything after that
// works on residue indices into that list. The stages are
//
//	extract    build the residue table, decide if a chain is CA-only
//	segments   cut the table at chain breaks
//	placeH     put amide hydrogens on backbone nitrogens
//	hbonds     electrostatic backbone hydrogen bond energies
//	angles     phi, psi, omega, alpha, improper, kappa, tco
//	turns      n-turns for n = 3, 4, 5, bends, chirality
//	bridges    bridges, ladders with beta-bulges, sheets
//	summary    one character per residue in a fixed priority order
//
// and finally the codes are written to Chain.SecStruct.
//
// The codes are H (alpha helix), G (3-10 helix), I (pi helix),
// E (strand), B (isolated bridge), T (turn), S (bend), - (coil) and
// ? for chains which only have alpha carbons.
//
// Nothing is kept between calls. Two calls can run at the same time as
// long as they do not share chains.
package dssp

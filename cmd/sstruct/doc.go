/*
sstruct assigns secondary structure to a protein using the hydrogen bond
patterns of Kabsch and Sander.

Usage:
 sstruct [options] file.pdb|file.cif|pdbcode

The input is a PDB or mmCIF format file, which may be gzipped, or a four
letter PDB code which is fetched from one of the PDB sites. Only the
first model is read.

Flags:
  -c A,B
    	Only use the named chains.
  -s	Treat each chain on its own. Without this, all chains go into one
    	calculation and sheets can be built from strands in different
    	chains.
  -j N
    	With -s, work on at most N chains at once.
  -w	Write one fasta style string per chain instead of a line per
    	residue.
  -n N
    	Line length for -w and the plot.
  -p file.png
    	Draw the codes as coloured boxes.
  -l logfile
    	Append warnings and notes to logfile. "stdout" works.
  -m N
    	Refuse structures with more than N residues.
  -o filename
    	Write output to filename instead of standard output.

The codes are H (alpha helix), G (3-10 helix), I (pi helix), E (strand
in a ladder), B (isolated bridge), T (hydrogen bonded turn), S (bend),
- (none) and ? (only CA atoms, nothing could be assigned).
*/
package main

// Package partition decomposes a database's person+family subgraph into
// connected components and computes, per person, how many ancestors and
// descendants are reachable from them. A person and a family are
// connected if the person has a FAMC or FAMS pointer to it (or the family
// has the corresponding CHIL/HUSB/WIFE back-pointer); families are walked
// during the search but never themselves appear in a partition's result.
package partition

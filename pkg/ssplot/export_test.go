package ssplot

var CellAt = cellAt

package statshim

// Symbol names one entry of the mode constant table.
type Symbol int

const (
	SymSetuid Symbol = iota
	SymSetgid
	SymSticky
	SymUserRead
	SymUserWrite
	SymUserExec
	SymGroupRead
	SymGroupWrite
	SymGroupExec
	SymOtherRead
	SymOtherWrite
	SymOtherExec
	SymTypeSocket
	SymTypeSymlink
	SymTypeRegular
	SymTypeBlock
	SymTypeDir
	SymTypeChar
	SymTypeFifo
	SymTypeMask

	numSymbols
)

var symbolTable = [numSymbols]struct {
	name  string
	value Mode
}{
	SymSetuid:      {"S_ISUID", ModeSetuid},
	SymSetgid:      {"S_ISGID", ModeSetgid},
	SymSticky:      {"S_ISVTX", ModeSticky},
	SymUserRead:    {"S_IRUSR", ModeUserRead},
	SymUserWrite:   {"S_IWUSR", ModeUserWrite},
	SymUserExec:    {"S_IXUSR", ModeUserExec},
	SymGroupRead:   {"S_IRGRP", ModeGroupRead},
	SymGroupWrite:  {"S_IWGRP", ModeGroupWrite},
	SymGroupExec:   {"S_IXGRP", ModeGroupExec},
	SymOtherRead:   {"S_IROTH", ModeOtherRead},
	SymOtherWrite:  {"S_IWOTH", ModeOtherWrite},
	SymOtherExec:   {"S_IXOTH", ModeOtherExec},
	SymTypeSocket:  {"S_IFSOCK", ModeTypeSocket},
	SymTypeSymlink: {"S_IFLNK", ModeTypeSymlink},
	SymTypeRegular: {"S_IFREG", ModeTypeRegular},
	SymTypeBlock:   {"S_IFBLK", ModeTypeBlock},
	SymTypeDir:     {"S_IFDIR", ModeTypeDir},
	SymTypeChar:    {"S_IFCHR", ModeTypeChar},
	SymTypeFifo:    {"S_IFIFO", ModeTypeFifo},
	SymTypeMask:    {"S_IFMT", ModeTypeMask},
}

// Symbols returns every symbol of the table in a fixed order.
func Symbols() []Symbol {
	ss := make([]Symbol, 0, numSymbols)

	for s := Symbol(0); s < numSymbols; s++ {
		ss = append(ss, s)
	}

	return ss
}

func (s Symbol) valid() bool {
	return s >= 0 && s < numSymbols
}

// String returns the POSIX name of s, e.g. "S_IRUSR".
func (s Symbol) String() string {
	if !s.valid() {
		return "S_UNKNOWN"
	}
	return symbolTable[s].name
}

// Value returns the host value of s, or 0 if the host cannot represent it.
func (s Symbol) Value() Mode {
	if !s.valid() {
		return 0
	}
	return symbolTable[s].value
}

// Supported reports whether the host defines s.
// No defined POSIX mode symbol has the value 0, so a zero value always
// means the concept is missing on this host.
func (s Symbol) Supported() bool {
	return s.Value() != 0
}

func IsBitSupported(s Symbol) bool {
	return s.Supported()
}

// LookupSymbol finds a symbol by its POSIX name.
func LookupSymbol(name string) (Symbol, bool) {
	for s := Symbol(0); s < numSymbols; s++ {
		if symbolTable[s].name == name {
			return s, true
		}
	}

	return 0, false
}

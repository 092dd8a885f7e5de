package banner

// PtrBitWidth64 is a Swift conditional-compilation condition that is true on
// 64-bit pointer targets. Templates use it in #if blocks; compilers older
// than 5.9 lack _pointerBitWidth, so those fall back to an architecture check.
const PtrBitWidth64 = "(compiler(>=5.9) && _pointerBitWidth(_64)) || (compiler(<5.9) && (arch(x86_64) || arch(arm64)))"

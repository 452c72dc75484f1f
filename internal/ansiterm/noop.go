package ansiterm

import (
	"image/color"

	"github.com/danielgatis/go-ansicode"
)

// The remaining ansicode.Handler methods below are either OSC/APC/PM/SOS-
// derived (title, clipboard, dynamic colors, hyperlinks, working directory,
// shell-integration marks) or describe 2D-grid terminal state the reducer
// does not model (cursor movement, scrolling regions, charsets, keyboard
// modes, device queries, Sixel/Kitty graphics).
//
// OSC/APC/PM/SOS-derived calls are silently dropped: they're out of
// scope, and a transcript reducer has nothing useful to do with a
// window title or a clipboard write. The CSI/ESC-class grid calls are
// recorded as UnrecognizedSequence instead of dropped, so callers that
// care can see what was ignored (the shell engine logs each one as a
// warning).

func (r *Reducer) ApplicationCommandReceived(data []byte) {}
func (r *Reducer) PrivacyMessageReceived(data []byte)     {}
func (r *Reducer) StartOfStringReceived(data []byte)      {}
func (r *Reducer) SetTitle(title string)                  {}
func (r *Reducer) PushTitle()                             {}
func (r *Reducer) PopTitle()                              {}

func (r *Reducer) ClipboardLoad(clipboard byte, terminator string)             {}
func (r *Reducer) ClipboardStore(clipboard byte, data []byte)                  {}
func (r *Reducer) SetDynamicColor(prefix string, index int, terminator string) {}
func (r *Reducer) SetColor(index int, c color.Color)                           {}
func (r *Reducer) ResetColor(i int)                                            {}
func (r *Reducer) SetHyperlink(hyperlink *ansicode.Hyperlink)                  {}
func (r *Reducer) SetWorkingDirectory(uri string)                              {}

func (r *Reducer) Bell() {}

func (r *Reducer) ClearLine(mode ansicode.LineClearMode)       { r.record("ClearLine") }
func (r *Reducer) ClearScreen(mode ansicode.ClearMode)         { r.record("ClearScreen") }
func (r *Reducer) ClearTabs(mode ansicode.TabulationClearMode) { r.record("ClearTabs") }
func (r *Reducer) Decaln()                                     { r.record("Decaln") }
func (r *Reducer) DeleteChars(n int)                           { r.record("DeleteChars") }
func (r *Reducer) DeleteLines(n int)                           { r.record("DeleteLines") }
func (r *Reducer) DeviceStatus(n int)                          { r.record("DeviceStatus") }
func (r *Reducer) EraseChars(n int)                            { r.record("EraseChars") }
func (r *Reducer) Goto(row, col int)                           { r.record("Goto") }
func (r *Reducer) GotoCol(col int)                             { r.record("GotoCol") }
func (r *Reducer) GotoLine(row int)                            { r.record("GotoLine") }
func (r *Reducer) HorizontalTabSet()                           { r.record("HorizontalTabSet") }
func (r *Reducer) IdentifyTerminal(b byte)                     { r.record("IdentifyTerminal") }
func (r *Reducer) InsertBlank(n int)                           { r.record("InsertBlank") }
func (r *Reducer) InsertBlankLines(n int)                      { r.record("InsertBlankLines") }
func (r *Reducer) MoveBackward(n int)                          { r.record("MoveBackward") }
func (r *Reducer) MoveBackwardTabs(n int)                      { r.record("MoveBackwardTabs") }
func (r *Reducer) MoveDown(n int)                              { r.record("MoveDown") }
func (r *Reducer) MoveDownCr(n int)                            { r.record("MoveDownCr") }
func (r *Reducer) MoveForward(n int)                           { r.record("MoveForward") }
func (r *Reducer) MoveForwardTabs(n int)                       { r.record("MoveForwardTabs") }
func (r *Reducer) MoveUp(n int)                                { r.record("MoveUp") }
func (r *Reducer) MoveUpCr(n int)                              { r.record("MoveUpCr") }
func (r *Reducer) PopKeyboardMode(n int)                       { r.record("PopKeyboardMode") }
func (r *Reducer) ReportKeyboardMode()                         { r.record("ReportKeyboardMode") }
func (r *Reducer) ReportModifyOtherKeys()                      { r.record("ReportModifyOtherKeys") }
func (r *Reducer) ResetState()                                 { r.record("ResetState") }
func (r *Reducer) RestoreCursorPosition()                      { r.record("RestoreCursorPosition") }
func (r *Reducer) ReverseIndex()                               { r.record("ReverseIndex") }
func (r *Reducer) SaveCursorPosition()                         { r.record("SaveCursorPosition") }
func (r *Reducer) ScrollDown(n int)                            { r.record("ScrollDown") }
func (r *Reducer) ScrollUp(n int)                              { r.record("ScrollUp") }
func (r *Reducer) SetActiveCharset(n int)                      { r.record("SetActiveCharset") }
func (r *Reducer) SetCursorStyle(style ansicode.CursorStyle)   { r.record("SetCursorStyle") }
func (r *Reducer) SetKeypadApplicationMode()                   { r.record("SetKeypadApplicationMode") }
func (r *Reducer) SetMode(mode ansicode.TerminalMode)          { r.record("SetMode") }
func (r *Reducer) SetScrollingRegion(top, bottom int)          { r.record("SetScrollingRegion") }
func (r *Reducer) Substitute()                                 { r.record("Substitute") }
func (r *Reducer) TextAreaSizeChars()                          { r.record("TextAreaSizeChars") }
func (r *Reducer) TextAreaSizePixels()                         { r.record("TextAreaSizePixels") }
func (r *Reducer) UnsetKeypadApplicationMode()                 { r.record("UnsetKeypadApplicationMode") }
func (r *Reducer) UnsetMode(mode ansicode.TerminalMode)        { r.record("UnsetMode") }
func (r *Reducer) CellSizePixels()                             { r.record("CellSizePixels") }

func (r *Reducer) ConfigureCharset(index ansicode.CharsetIndex, charset ansicode.Charset) {
	r.record("ConfigureCharset")
}

func (r *Reducer) PushKeyboardMode(mode ansicode.KeyboardMode) {
	r.record("PushKeyboardMode")
}

func (r *Reducer) SetKeyboardMode(mode ansicode.KeyboardMode, behavior ansicode.KeyboardModeBehavior) {
	r.record("SetKeyboardMode")
}

func (r *Reducer) SetModifyOtherKeys(modify ansicode.ModifyOtherKeys) {
	r.record("SetModifyOtherKeys")
}

func (r *Reducer) SixelReceived(params [][]uint16, data []byte) {
	r.record("SixelReceived")
}

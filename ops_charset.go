package vtscreen

// DesignateCharset implements SCS: assigns a charset to one of the G0/G1
// character set slots without necessarily activating it.
func (s *Screen) DesignateCharset(which int, as Charset) {
	run := func(which int, as Charset) { s.charset.Designate(which, as) }
	if s.middleware.DesignateCharset != nil {
		s.middleware.DesignateCharset(which, as, run)
		return
	}
	run(which, as)
}

// ChangeCharset implements SI/SO (LS0/LS1): selects which designated slot
// (G0 or G1) is active for subsequent Draw calls.
func (s *Screen) ChangeCharset(which int) {
	run := func(which int) { s.charset.ChangeActive(which) }
	if s.middleware.ChangeCharset != nil {
		s.middleware.ChangeCharset(which, run)
		return
	}
	run(which)
}

// UseLatin1 records the Latin-1 override flag in the charset state and
// notifies the sink that the child's expected input encoding has changed.
// Draw does not consult the flag: the active G0/G1 translation applies
// either way.
func (s *Screen) UseLatin1(on bool) {
	run := func(on bool) {
		s.charset.Latin1 = on
		s.sink.UseUTF8(!on)
	}
	if s.middleware.UseLatin1 != nil {
		s.middleware.UseLatin1(on, run)
		return
	}
	run(on)
}

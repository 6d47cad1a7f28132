package taxonomy

// seedCategories is the static skill catalog. Ids are stable and referenced
// by persisted mastery records; never renumber or reuse them.
var seedCategories = []Category{
	{
		ID:   "0",
		Name: "Meta & Representation",
		SubCategories: []SubCategory{
			{
				ID:   "0.1",
				Name: "Reading & writing numbers",
				Skills: []Skill{
					{ID: "META.NUM.READ.INT", Name: "Reading integers"},
					{ID: "META.NUM.READ.DEC", Name: "Reading decimals"},
					{ID: "META.NUM.READ.FRAC", Name: "Reading fractions"},
				},
			},
		},
	},
	{
		ID:   "1",
		Name: "Whole Numbers & Place Value",
		SubCategories: []SubCategory{
			{
				ID:   "1.1",
				Name: "Place value",
				Skills: []Skill{
					{ID: "NUM.PLACE.WHOLE", Name: "Place value (Whole)"},
					{ID: "NUM.PLACE.DEC", Name: "Place value (Decimals)"},
				},
			},
			{
				ID:   "1.2",
				Name: "Comparing & ordering",
				Skills: []Skill{
					{ID: "NUM.COMP.WHOLE", Name: "Compare whole numbers"},
					{ID: "NUM.COMP.DEC", Name: "Compare decimals"},
				},
			},
			{
				ID:   "1.3",
				Name: "Rounding",
				Skills: []Skill{
					{ID: "NUM.ROUND.WHOLE", Name: "Rounding whole numbers"},
					{ID: "NUM.ROUND.DEC", Name: "Rounding decimals"},
					{ID: "NUM.EST.WHOLE", Name: "Estimating (Whole)"},
					{ID: "NUM.EST.DEC", Name: "Estimating (Decimals)"},
				},
			},
		},
	},
	{
		ID:   "2",
		Name: "Addition",
		SubCategories: []SubCategory{
			{
				ID:   "2.1",
				Name: "Addition Facts",
				Skills: []Skill{
					{ID: "ARITH.ADD.FACT.SINGLE", Name: "Single-digit facts"},
					{ID: "ARITH.ADD.FACT.TWO_DIG", Name: "Mental two-digit"},
				},
			},
			{
				ID:   "2.2",
				Name: "Written Addition",
				Skills: []Skill{
					{ID: "ARITH.ADD.WHOLE.NO_REGROUP", Name: "No carry"},
					{ID: "ARITH.ADD.WHOLE.REGROUP", Name: "With carrying"},
					{ID: "ARITH.ADD.WHOLE.MANY_ADDENDS", Name: "Adding 3+ numbers"},
				},
			},
			{
				ID:   "2.3",
				Name: "Decimals",
				Skills: []Skill{
					{ID: "ARITH.ADD.DEC.ALIGN", Name: "Aligning decimals"},
					{ID: "ARITH.ADD.DEC.NO_REGROUP", Name: "Decimals no carry"},
					{ID: "ARITH.ADD.DEC.REGROUP", Name: "Decimals with carry"},
				},
			},
			{
				ID:   "2.4",
				Name: "Integers",
				Skills: []Skill{
					{ID: "ARITH.ADD.INT.SAME_SIGN", Name: "Same signs"},
					{ID: "ARITH.ADD.INT.OPPOSITE_SIGN", Name: "Different signs"},
				},
			},
		},
	},
	{
		ID:   "3",
		Name: "Subtraction",
		SubCategories: []SubCategory{
			{
				ID:   "3.1",
				Name: "Subtraction Facts",
				Skills: []Skill{
					{ID: "ARITH.SUB.FACT.SINGLE", Name: "Single-digit facts"},
					{ID: "ARITH.SUB.MENTAL.TWO_DIG", Name: "Mental two-digit"},
				},
			},
			{
				ID:   "3.2",
				Name: "Written Subtraction",
				Skills: []Skill{
					{ID: "ARITH.SUB.WHOLE.NO_REGROUP", Name: "No borrowing"},
					{ID: "ARITH.SUB.WHOLE.REGROUP_SIMPLE", Name: "Simple borrowing"},
					{ID: "ARITH.SUB.WHOLE.REGROUP_MULTI", Name: "Borrowing across zeros"},
				},
			},
			{
				ID:   "3.3",
				Name: "Decimals",
				Skills: []Skill{
					{ID: "ARITH.SUB.DEC.ALIGN", Name: "Aligning decimals"},
					{ID: "ARITH.SUB.DEC.NO_REGROUP", Name: "Decimals no borrow"},
					{ID: "ARITH.SUB.DEC.REGROUP", Name: "Decimals with borrow"},
				},
			},
			{
				ID:   "3.4",
				Name: "Integers",
				Skills: []Skill{
					{ID: "ARITH.SUB.INT.SAME_SIGN", Name: "Same sign"},
					{ID: "ARITH.SUB.INT.OPPOSITE_SIGN", Name: "Opposite sign"},
				},
			},
		},
	},
	{
		ID:   "4",
		Name: "Multiplication",
		SubCategories: []SubCategory{
			{
				ID:   "4.1",
				Name: "Facts",
				Skills: []Skill{
					{ID: "ARITH.MUL.FACT.SINGLE", Name: "Multiplication table"},
					{ID: "ARITH.MUL.FACT.BY10", Name: "Multiply by 10/100"},
				},
			},
			{
				ID:   "4.2",
				Name: "Multi-digit",
				Skills: []Skill{
					{ID: "ARITH.MUL.WHOLE.1x2_DIG", Name: "1-digit x 2-digit"},
					{ID: "ARITH.MUL.WHOLE.2x2_DIG", Name: "2-digit x 2-digit"},
					{ID: "ARITH.MUL.WHOLE.3x2_DIG", Name: "Larger products"},
					{ID: "ARITH.MUL.WHOLE.USING_ZEROES", Name: "Using zeros"},
				},
			},
			{
				ID:   "4.3",
				Name: "Decimals",
				Skills: []Skill{
					{ID: "ARITH.MUL.DEC.BY_WHOLE", Name: "Decimal x Whole"},
					{ID: "ARITH.MUL.DEC.DEC", Name: "Decimal x Decimal"},
				},
			},
			{
				ID:   "4.4",
				Name: "Fractions",
				Skills: []Skill{
					{ID: "ARITH.MUL.FRAC.PROPER", Name: "Proper fractions"},
					{ID: "ARITH.MUL.FRAC.MIXED", Name: "Mixed numbers"},
					{ID: "ARITH.MUL.FRAC.WHOLE", Name: "Fraction x Whole"},
				},
			},
			{
				ID:   "4.5",
				Name: "Signed Numbers",
				Skills: []Skill{
					{ID: "ARITH.MUL.SIGNED.RULES", Name: "Sign rules"},
				},
			},
		},
	},
	{
		ID:   "5",
		Name: "Division",
		SubCategories: []SubCategory{
			{
				ID:   "5.1",
				Name: "Basic Division",
				Skills: []Skill{
					{ID: "ARITH.DIV.FACT.SINGLE", Name: "Division facts"},
					{ID: "ARITH.DIV.MENTAL.WHOLE", Name: "Mental division"},
				},
			},
			{
				ID:   "5.2",
				Name: "Long Division",
				Skills: []Skill{
					{ID: "ARITH.DIV.WHOLE.1-DIG_DIV", Name: "1-digit divisor"},
					{ID: "ARITH.DIV.WHOLE.2-DIG_DIV", Name: "2-digit divisor"},
					{ID: "ARITH.DIV.WHOLE.REMAINDER", Name: "Remainders"},
				},
			},
			{
				ID:   "5.3",
				Name: "Decimals",
				Skills: []Skill{
					{ID: "ARITH.DIV.DEC.BY_WHOLE", Name: "Decimal / Whole"},
					{ID: "ARITH.DIV.WHOLE.BY_DEC", Name: "Whole / Decimal"},
					{ID: "ARITH.DIV.DEC.DEC", Name: "Decimal / Decimal"},
				},
			},
			{
				ID:   "5.4",
				Name: "Fractions",
				Skills: []Skill{
					{ID: "ARITH.DIV.FRAC.FRAC", Name: "Fraction / Fraction"},
					{ID: "ARITH.DIV.FRAC.WHOLE", Name: "Fraction / Whole"},
					{ID: "ARITH.DIV.WHOLE.FRAC", Name: "Whole / Fraction"},
				},
			},
			{
				ID:   "5.5",
				Name: "Signed Numbers",
				Skills: []Skill{
					{ID: "ARITH.DIV.SIGNED.RULES", Name: "Sign rules"},
				},
			},
		},
	},
	{
		ID:   "6",
		Name: "Factors & Multiples",
		SubCategories: []SubCategory{
			{
				ID:   "6.1",
				Name: "Divisibility",
				Skills: []Skill{
					{ID: "NUM.FACTOR.LIST", Name: "Factors"},
					{ID: "NUM.MULTIPLE.LIST", Name: "Multiples"},
					{ID: "NUM.DIVIS.RULES", Name: "Divisibility Rules"},
					{ID: "NUM.PRIME.COMPOSITE", Name: "Primes & Composites"},
					{ID: "NUM.GCD.LCM.BASIC", Name: "GCD & LCM"},
				},
			},
		},
	},
	{
		ID:   "7",
		Name: "Fractions - Basics",
		SubCategories: []SubCategory{
			{
				ID:   "7.1",
				Name: "Understanding",
				Skills: []Skill{
					{ID: "FRAC.FORM.RECOG", Name: "Recognize forms"},
					{ID: "FRAC.FORM.CONVERT.MIXED_IMPROPER", Name: "Mixed to improper"},
				},
			},
			{
				ID:   "7.2",
				Name: "Equivalence",
				Skills: []Skill{
					{ID: "FRAC.EQUIV.GEN", Name: "Equivalent fractions"},
					{ID: "FRAC.SIMPLIFY.BASIC", Name: "Simplifying basic"},
					{ID: "FRAC.SIMPLIFY.GCD", Name: "Simplifying GCD"},
				},
			},
			{
				ID:   "7.3",
				Name: "Comparison",
				Skills: []Skill{
					{ID: "FRAC.COMP.SAME_DEN", Name: "Same Denom"},
					{ID: "FRAC.COMP.SAME_NUM", Name: "Same Numerator"},
					{ID: "FRAC.COMP.DIFF_DEN.LCD", Name: "Common Denom"},
					{ID: "FRAC.COMP.DIFF_DEN.CROSS", Name: "Cross Mult"},
				},
			},
		},
	},
	{
		ID:   "8",
		Name: "Fraction Operations",
		SubCategories: []SubCategory{
			{
				ID:   "8.1",
				Name: "Add/Subtract",
				Skills: []Skill{
					{ID: "FRAC.ADD.SAME_DEN", Name: "Add (Same Denom)"},
					{ID: "FRAC.ADD.DIFF_DEN.LCD", Name: "Add (Diff Denom)"},
					{ID: "FRAC.SUB.SAME_DEN", Name: "Subtract (Same Denom)"},
					{ID: "FRAC.SUB.DIFF_DEN.LCD", Name: "Subtract (Diff Denom)"},
					{ID: "FRAC.OP.MIXED", Name: "Mixed Number Ops"},
				},
			},
			{
				ID:   "8.2",
				Name: "Mul/Div",
				Skills: []Skill{
					{ID: "FRAC.MUL.BASIC", Name: "Basic Multiply"},
					{ID: "FRAC.MUL.CANCEL", Name: "Multiply w/ Cancel"},
					{ID: "FRAC.DIV.BASIC", Name: "Invert & Multiply"},
				},
			},
		},
	},
	{
		ID:   "9",
		Name: "Decimals",
		SubCategories: []SubCategory{
			{
				ID:   "9.1",
				Name: "Basics",
				Skills: []Skill{
					{ID: "DEC.REP.PLACE", Name: "Place Value"},
					{ID: "DEC.CONV.FRAC.TERMINATING", Name: "Fraction conversion"},
					{ID: "DEC.COMP.ORDER", Name: "Compare/Order"},
				},
			},
			{
				ID:   "9.2",
				Name: "Operations",
				Skills: []Skill{
					{ID: "DEC.ADD.SUB.BASIC", Name: "Add/Sub Alignment"},
					{ID: "DEC.MUL.PLACEMENT", Name: "Decimal Placement"},
					{ID: "DEC.DIV.BY_INT", Name: "Div by Integer"},
					{ID: "DEC.DIV.BY_DEC", Name: "Div by Decimal"},
				},
			},
		},
	},
	{
		ID:   "10",
		Name: "Percentages",
		SubCategories: []SubCategory{
			{
				ID:   "10.1",
				Name: "Basics",
				Skills: []Skill{
					{ID: "PERC.DEF.FRAC_DEC", Name: "Definition"},
					{ID: "PERC.CONV.FRAC", Name: "To Fraction"},
					{ID: "PERC.CONV.DEC", Name: "To Decimal"},
				},
			},
			{
				ID:   "10.2",
				Name: "Calculations",
				Skills: []Skill{
					{ID: "PERC.CALC.OF_QUANTITY", Name: "% of number"},
					{ID: "PERC.CALC.WHAT_IS_PERCENT", Name: "What % is"},
					{ID: "PERC.CALC.BASE_NUMBER", Name: "Find base"},
				},
			},
			{
				ID:   "10.3",
				Name: "Change",
				Skills: []Skill{
					{ID: "PERC.CHANGE.INCREASE", Name: "Increase"},
					{ID: "PERC.CHANGE.DECREASE", Name: "Decrease"},
					{ID: "PERC.CHANGE.MULTI_STEP", Name: "Multi-step"},
				},
			},
		},
	},
	{
		ID:   "11",
		Name: "Ratio & Proportions",
		SubCategories: []SubCategory{
			{
				ID:   "11.1",
				Name: "Ratios",
				Skills: []Skill{
					{ID: "RATIO.REP.FORM", Name: "Forms"},
					{ID: "RATIO.SIMPLE.SCALE", Name: "Scaling"},
				},
			},
			{
				ID:   "11.2",
				Name: "Proportions",
				Skills: []Skill{
					{ID: "PROP.SOLVE.CROSS_MULT", Name: "Cross Multiplication"},
					{ID: "PROP.UNIT_RATE", Name: "Unit Rate"},
					{ID: "PROP.TABLE.SCALING", Name: "Table Scaling"},
				},
			},
			{
				ID:   "11.3",
				Name: "Applications",
				Skills: []Skill{
					{ID: "PROP.APP.MIXTURE", Name: "Mixtures"},
					{ID: "PROP.APP.MAP_SCALE", Name: "Scale Maps"},
				},
			},
		},
	},
	{
		ID:   "12",
		Name: "Powers & Scientific Notation",
		SubCategories: []SubCategory{
			{
				ID:   "12.1",
				Name: "Exponents",
				Skills: []Skill{
					{ID: "POW.INT.SMALL", Name: "Small Powers"},
					{ID: "POW.RULES.MULT", Name: "Product Rule"},
					{ID: "POW.RULES.DIV", Name: "Quotient Rule"},
				},
			},
			{
				ID:   "12.2",
				Name: "Roots",
				Skills: []Skill{
					{ID: "ROOT.SQ.SMALL", Name: "Square Roots"},
					{ID: "ROOT.SQ.APPROX", Name: "Approximate Roots"},
				},
			},
			{
				ID:   "12.3",
				Name: "Scientific Notation",
				Skills: []Skill{
					{ID: "SCI.NOT.CREATE", Name: "Create Notation"},
					{ID: "SCI.NOT.OP.ADD_SUB", Name: "Add/Sub Sci Not"},
					{ID: "SCI.NOT.OP.MUL_DIV", Name: "Mul/Div Sci Not"},
				},
			},
		},
	},
	{
		ID:   "13",
		Name: "Algebra Basics",
		SubCategories: []SubCategory{
			{
				ID:   "13.1",
				Name: "Order of Operations",
				Skills: []Skill{
					{ID: "ALG.OO.BASIC", Name: "PEMDAS Basic"},
					{ID: "ALG.OO.WITH_SIGNED", Name: "PEMDAS Signed"},
					{ID: "ALG.OO.WITH_FRAC_DEC", Name: "PEMDAS Frac/Dec"},
				},
			},
			{
				ID:   "13.2",
				Name: "Evaluating",
				Skills: []Skill{
					{ID: "ALG.EVAL.SUB_INTO_EXPR", Name: "Substitute values"},
					{ID: "ALG.EVAL.FUNC_SIMPLE", Name: "Evaluate function"},
				},
			},
			{
				ID:   "13.3",
				Name: "Simplifying",
				Skills: []Skill{
					{ID: "ALG.SIMP.LIKE_TERMS", Name: "Combine like terms"},
					{ID: "ALG.SIMP.DISTRI", Name: "Distributive property"},
				},
			},
			{
				ID:   "13.4",
				Name: "Word Problems",
				Skills: []Skill{
					{ID: "WP.TRANSL.ADD_SUB", Name: "Translate Add/Sub"},
					{ID: "WP.TRANSL.MUL_DIV", Name: "Translate Mul/Div"},
					{ID: "WP.TRANSL.PERC", Name: "Translate Percent"},
					{ID: "WP.TRANSL.RATIO_PROP", Name: "Translate Ratio"},
				},
			},
		},
	},
	{
		ID:   "15",
		Name: "Checking & Estimation",
		SubCategories: []SubCategory{
			{
				ID:   "15.1",
				Name: "Checking",
				Skills: []Skill{
					{ID: "META.CHECK.ESTIMATE", Name: "Estimation Check"},
					{ID: "META.CHECK.REVERSE", Name: "Reverse Operation"},
					{ID: "META.CHECK.UNIT_SENSE", Name: "Unit Sense"},
				},
			},
		},
	},
	{
		ID:   "16",
		Name: "Equations & Inequalities",
		SubCategories: []SubCategory{
			{
				ID:   "16.1",
				Name: "Linear Equations",
				Skills: []Skill{
					{ID: "EQ.LIN1.SOLVE.BASIC", Name: "Solve ax+b=c"},
					{ID: "EQ.LIN1.SOLVE.FRAC_DEC", Name: "With fractions/dec"},
					{ID: "EQ.LIN1.SOLVE.PAREN", Name: "With parentheses"},
					{ID: "EQ.LIN1.CHECK.SOLUTION", Name: "Check solution"},
				},
			},
			{
				ID:   "16.2",
				Name: "Systems",
				Skills: []Skill{
					{ID: "EQ.LIN_SYS.2X2.SUBST", Name: "Substitution"},
					{ID: "EQ.LIN_SYS.2X2.ELIM", Name: "Elimination"},
					{ID: "EQ.LIN_SYS.2X2.DET", Name: "Determinants"},
				},
			},
			{
				ID:   "16.3",
				Name: "Quadratics",
				Skills: []Skill{
					{ID: "EQ.QUAD.FACTOR", Name: "Factoring"},
					{ID: "EQ.QUAD.COMPLETING_SQUARE", Name: "Completing Square"},
					{ID: "EQ.QUAD.FORMULA.SUB", Name: "Quadratic Formula Sub"},
					{ID: "EQ.QUAD.FORMULA.DISC", Name: "Discriminant"},
				},
			},
			{
				ID:   "16.4",
				Name: "Other Equations",
				Skills: []Skill{
					{ID: "EQ.RATIONAL.SOLVE", Name: "Rational Equations"},
					{ID: "EQ.ABS.SOLVE", Name: "Absolute Value"},
					{ID: "EQ.EXP.SOLVE.BASIC", Name: "Basic Exponential"},
				},
			},
			{
				ID:   "16.5",
				Name: "Inequalities",
				Skills: []Skill{
					{ID: "INEQ.LIN1.SOLVE.BASIC", Name: "Linear Inequalities"},
					{ID: "INEQ.LIN1.SOLVE.MULT_DIV_NEG", Name: "Sign Flipping"},
					{ID: "INEQ.SYS.GRAPH", Name: "Graphing Systems"},
				},
			},
		},
	},
	{
		ID:   "17",
		Name: "Functions",
		SubCategories: []SubCategory{
			{
				ID:   "17.1",
				Name: "Evaluation",
				Skills: []Skill{
					{ID: "FUNC.EVAL.LINEAR", Name: "Linear Eval"},
					{ID: "FUNC.EVAL.QUAD", Name: "Quadratic Eval"},
					{ID: "FUNC.EVAL.POLY", Name: "Polynomial Eval"},
					{ID: "FUNC.EVAL.RATIONAL", Name: "Rational Eval"},
					{ID: "FUNC.TABLE.FILL", Name: "Table Filling"},
					{ID: "FUNC.INVERSE.SIMPLE", Name: "Inverse Functions"},
				},
			},
		},
	},
	{
		ID:   "18",
		Name: "Logarithms",
		SubCategories: []SubCategory{
			{
				ID:   "18.1",
				Name: "Basics",
				Skills: []Skill{
					{ID: "LOG.DEF.CHANGE_BASE", Name: "Change of Base"},
					{ID: "LOG.EVAL.BASE10", Name: "Base 10 eval"},
					{ID: "LOG.EVAL.BASE_E", Name: "Natural Log"},
				},
			},
			{
				ID:   "18.2",
				Name: "Laws",
				Skills: []Skill{
					{ID: "LOG.LAWS.ADD", Name: "Product Rule"},
					{ID: "LOG.LAWS.SUB", Name: "Quotient Rule"},
					{ID: "LOG.LAWS.POWER", Name: "Power Rule"},
					{ID: "LOG.SIMPLIFY.EXPR", Name: "Simplify Expression"},
				},
			},
			{
				ID:   "18.3",
				Name: "Equations",
				Skills: []Skill{
					{ID: "EQ.LOG.ISOLATE", Name: "Isolate Log"},
					{ID: "EQ.LOG.EXP_FORM", Name: "Exponential Form"},
					{ID: "EQ.LOG.MULTI_TERM", Name: "Multi-term logs"},
				},
			},
		},
	},
	{
		ID:   "19",
		Name: "Exponentials",
		SubCategories: []SubCategory{
			{
				ID:   "19.1",
				Name: "Simplification",
				Skills: []Skill{
					{ID: "EXP.SIMPLIFY.SAME_BASE", Name: "Same Base"},
					{ID: "EXP.SIMPLIFY.SAME_EXP", Name: "Same Exponent"},
					{ID: "EXP.CONT.FRACTIONS", Name: "Fractional Exponents"},
				},
			},
			{
				ID:   "19.2",
				Name: "Equations",
				Skills: []Skill{
					{ID: "EXP.EQ.SAME_BASE", Name: "Equating Exponents"},
				},
			},
		},
	},
	{
		ID:   "20",
		Name: "Trigonometry",
		SubCategories: []SubCategory{
			{
				ID:   "20.1",
				Name: "Ratios",
				Skills: []Skill{
					{ID: "TRIG.RATIOS.RIGHT_TRI", Name: "Right Triangle"},
					{ID: "TRIG.RATIOS.INVERSE", Name: "Inverse Trig"},
					{ID: "TRIG.RATIOS.SPECIAL_ANGLES", Name: "Special Angles"},
				},
			},
			{
				ID:   "20.2",
				Name: "Units",
				Skills: []Skill{
					{ID: "TRIG.CONV.DEG_RAD", Name: "Degrees/Radians"},
					{ID: "TRIG.EVAL.RAD", Name: "Evaluate Radian"},
				},
			},
			{
				ID:   "20.3",
				Name: "Identities",
				Skills: []Skill{
					{ID: "TRIG.ID.PYTHAG", Name: "Pythagorean Identity"},
					{ID: "TRIG.ID.DOUBLE_HALF", Name: "Double/Half Angle"},
					{ID: "TRIG.ID.ADD_SUB", Name: "Sum/Difference"},
				},
			},
			{
				ID:   "20.4",
				Name: "Equations",
				Skills: []Skill{
					{ID: "EQ.TRIG.BASIC.SOLVE", Name: "Basic Equations"},
					{ID: "EQ.TRIG.TRANSFORM", Name: "Argument Transform"},
				},
			},
			{
				ID:   "20.5",
				Name: "Applications",
				Skills: []Skill{
					{ID: "TRIG.LAW.SINES", Name: "Law of Sines"},
					{ID: "TRIG.LAW.COSINES", Name: "Law of Cosines"},
					{ID: "TRIG.AREA.SINE", Name: "Sine Area Formula"},
				},
			},
		},
	},
	{
		ID:   "21",
		Name: "Complex Numbers",
		SubCategories: []SubCategory{
			{
				ID:   "21.1",
				Name: "Operations",
				Skills: []Skill{
					{ID: "CPLX.ADD_SUB", Name: "Add/Subtract"},
					{ID: "CPLX.MUL.BASIC", Name: "Multiply"},
					{ID: "CPLX.DIV.BY_CONJ", Name: "Division"},
				},
			},
			{
				ID:   "21.2",
				Name: "Forms",
				Skills: []Skill{
					{ID: "CPLX.FORM.RECT_POLAR", Name: "Rectangular/Polar"},
					{ID: "CPLX.MOD.ARG", Name: "Modulus/Argument"},
				},
			},
			{
				ID:   "21.3",
				Name: "Powers",
				Skills: []Skill{
					{ID: "CPLX.POW.DE_MOIVRE", Name: "De Moivre"},
					{ID: "CPLX.ROOTS.UNITY", Name: "Roots of Unity"},
				},
			},
		},
	},
	{
		ID:   "22",
		Name: "Analytic Geometry",
		SubCategories: []SubCategory{
			{
				ID:   "22.1",
				Name: "Lines",
				Skills: []Skill{
					{ID: "GEO.ANAL.LINE.SLOPE", Name: "Slope"},
					{ID: "GEO.ANAL.LINE.EQ.POINT_SLOPE", Name: "Point-Slope"},
					{ID: "GEO.ANAL.LINE.EQ.TWO_POINTS", Name: "Two Points"},
					{ID: "GEO.ANAL.LINE.DIST_POINT_LINE", Name: "Dist Point-Line"},
				},
			},
			{
				ID:   "22.2",
				Name: "Vectors 2D",
				Skills: []Skill{
					{ID: "GEO.ANAL.DIST.POINTS", Name: "Distance"},
					{ID: "GEO.ANAL.MIDPOINT", Name: "Midpoint"},
					{ID: "VEC.2D.ADD_SUB", Name: "Vector Add/Sub"},
					{ID: "VEC.2D.SCALAR_MUL", Name: "Scalar Mul"},
					{ID: "VEC.2D.DOT", Name: "Dot Product"},
				},
			},
			{
				ID:   "22.3",
				Name: "Conics",
				Skills: []Skill{
					{ID: "CONIC.CIRCLE.PARAMS", Name: "Circle"},
					{ID: "CONIC.PARABOLA.VERTEX", Name: "Parabola"},
					{ID: "CONIC.ELLIPSE.HYPERBOLA", Name: "Ellipse/Hyperbola"},
				},
			},
		},
	},
	{
		ID:   "23",
		Name: "Geometry",
		SubCategories: []SubCategory{
			{
				ID:   "23.1",
				Name: "2D Area/Perimeter",
				Skills: []Skill{
					{ID: "GEO.2D.PERIM.BASIC", Name: "Perimeter"},
					{ID: "GEO.2D.AREA.RECT_TRI", Name: "Area Rect/Tri"},
					{ID: "GEO.2D.AREA.PAR_TRAP", Name: "Area Par/Trap"},
					{ID: "GEO.2D.AREA.CIRCLE", Name: "Area Circle"},
					{ID: "GEO.2D.AREA.SECTOR", Name: "Area Sector"},
				},
			},
			{
				ID:   "23.2",
				Name: "3D Volume/Surface",
				Skills: []Skill{
					{ID: "GEO.3D.VOL.PRISM_CYL", Name: "Prism/Cyl"},
					{ID: "GEO.3D.VOL.PYR_CONE", Name: "Pyramid/Cone"},
					{ID: "GEO.3D.VOL.SPHERE", Name: "Sphere"},
				},
			},
		},
	},
	{
		ID:   "24",
		Name: "Sequences & Series",
		SubCategories: []SubCategory{
			{
				ID:   "24.1",
				Name: "Sequences",
				Skills: []Skill{
					{ID: "SEQ.ARITH.NTH", Name: "Arithmetic Nth"},
					{ID: "SEQ.ARITH.SUM", Name: "Arithmetic Sum"},
					{ID: "SEQ.GEOM.NTH", Name: "Geometric Nth"},
					{ID: "SEQ.GEOM.SUM_FINITE", Name: "Geometric Finite"},
					{ID: "SEQ.GEOM.SUM_INFINITE", Name: "Geometric Infinite"},
				},
			},
			{
				ID:   "24.2",
				Name: "Series",
				Skills: []Skill{
					{ID: "SERIES.SIGMA.EVAL", Name: "Sigma Evaluation"},
					{ID: "SERIES.BINOM.EXPANSION", Name: "Binomial Expansion"},
				},
			},
		},
	},
	{
		ID:   "25",
		Name: "Combinatorics & Stats",
		SubCategories: []SubCategory{
			{
				ID:   "25.1",
				Name: "Counting",
				Skills: []Skill{
					{ID: "COMB.FACTORIAL.CALC", Name: "Factorials"},
					{ID: "COMB.PERMUTATIONS", Name: "Permutations"},
					{ID: "COMB.COMBINATIONS", Name: "Combinations"},
				},
			},
			{
				ID:   "25.2",
				Name: "Probability",
				Skills: []Skill{
					{ID: "PROB.BASIC.FAV_TOTAL", Name: "Basic Prob"},
					{ID: "PROB.MULTI.STEP", Name: "Multi-step"},
					{ID: "PROB.COND.BASIC", Name: "Conditional"},
				},
			},
			{
				ID:   "25.3",
				Name: "Statistics",
				Skills: []Skill{
					{ID: "STAT.EXPECT.DISCRETE", Name: "Expected Value"},
					{ID: "STAT.VAR.DISCRETE", Name: "Variance"},
				},
			},
		},
	},
	{
		ID:   "26",
		Name: "Linear Algebra",
		SubCategories: []SubCategory{
			{
				ID:   "26.1",
				Name: "Matrices",
				Skills: []Skill{
					{ID: "MAT.ADD_SUB", Name: "Add/Sub"},
					{ID: "MAT.SCALAR_MUL", Name: "Scalar Mul"},
					{ID: "MAT.MUL.BASIC", Name: "Multiply"},
					{ID: "MAT.TRANSPOSE", Name: "Transpose"},
				},
			},
			{
				ID:   "26.2",
				Name: "Determinants",
				Skills: []Skill{
					{ID: "MAT.DET.2X2", Name: "Det 2x2"},
					{ID: "MAT.DET.3X3.EXP", Name: "Det 3x3"},
					{ID: "MAT.INV.2X2", Name: "Inverse 2x2"},
				},
			},
			{
				ID:   "26.3",
				Name: "Systems",
				Skills: []Skill{
					{ID: "MAT.SOLVE.AX_B", Name: "Solve AX=B"},
					{ID: "MAT.ROW.OP", Name: "Row Operations"},
				},
			},
			{
				ID:   "26.4",
				Name: "Vectors 3D",
				Skills: []Skill{
					{ID: "VEC.3D.ADD_SUB", Name: "Add/Sub 3D"},
					{ID: "VEC.3D.DOT", Name: "Dot Product"},
					{ID: "VEC.3D.CROSS", Name: "Cross Product"},
				},
			},
		},
	},
	{
		ID:   "27",
		Name: "Calculus",
		SubCategories: []SubCategory{
			{
				ID:   "27.1",
				Name: "Limits",
				Skills: []Skill{
					{ID: "CALC.LIMIT.SUB_DIRECT", Name: "Direct Subst"},
					{ID: "CALC.LIMIT.FACTOR_CANCEL", Name: "Factoring"},
					{ID: "CALC.LIMIT.RATIONAL_INF", Name: "Rational Inf"},
					{ID: "CALC.LIMIT.ONE_SIDED", Name: "One-sided"},
				},
			},
			{
				ID:   "27.2",
				Name: "Derivatives",
				Skills: []Skill{
					{ID: "CALC.DERIV.POWER_RULE", Name: "Power Rule"},
					{ID: "CALC.DERIV.PROD_RULE", Name: "Product Rule"},
					{ID: "CALC.DERIV.QUOT_RULE", Name: "Quotient Rule"},
					{ID: "CALC.DERIV.CHAIN_RULE", Name: "Chain Rule"},
					{ID: "CALC.DERIV.TRIG", Name: "Trig Deriv"},
					{ID: "CALC.DERIV.EXP_LOG", Name: "Exp/Log Deriv"},
				},
			},
			{
				ID:   "27.3",
				Name: "Integrals",
				Skills: []Skill{
					{ID: "CALC.INT.POWER", Name: "Power Rule Int"},
					{ID: "CALC.INT.SUBST", Name: "U-Substitution"},
					{ID: "CALC.INT.BY_PARTS", Name: "By Parts"},
					{ID: "CALC.INT.TRIG_BASIC", Name: "Trig Integrals"},
					{ID: "CALC.INT.RATIONAL.PART", Name: "Partial Fractions"},
					{ID: "CALC.INT.DEF.EVAL", Name: "Definite Integrals"},
				},
			},
			{
				ID:   "27.4",
				Name: "Series",
				Skills: []Skill{
					{ID: "CALC.SERIES.TERM_N", Name: "Partial Sums"},
					{ID: "CALC.SERIES.TAYLOR.EVAL", Name: "Taylor Poly"},
				},
			},
		},
	},
	{
		ID:   "28",
		Name: "Numerical Methods",
		SubCategories: []SubCategory{
			{
				ID:   "28.1",
				Name: "Basics",
				Skills: []Skill{
					{ID: "NUM.METH.ROUNDING.ERROR", Name: "Rounding Error"},
					{ID: "NUM.METH.NEWTON_STEP", Name: "Newton's Method"},
					{ID: "NUM.METH.TRAP_RULE", Name: "Trapezoidal Rule"},
					{ID: "NUM.METH.SIMPSON", Name: "Simpson's Rule"},
				},
			},
		},
	},
}
